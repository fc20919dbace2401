package parbench

// Kernel is a 3x3 matrix of real convolution weights, indexed [row][col].
type Kernel [3][3]float64

// IntKernel is a 3x3 matrix of integer convolution weights, indexed [row][col].
type IntKernel [3][3]int

var (
	// BlurKernel is the uniform box filter. Its weights sum to 1.
	BlurKernel = Kernel{
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	}

	// SharpenKernel boosts the centre pixel against its four direct neighbours.
	SharpenKernel = Kernel{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}

	// SobelXKernel approximates the horizontal intensity gradient.
	// See https://en.wikipedia.org/wiki/Sobel_operator
	SobelXKernel = IntKernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
)
