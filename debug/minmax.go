package debug

import "golang.org/x/exp/constraints"

// GLSLMax returns y if x < y, else x, using the host comparison for T. For
// floats this is not IEEE maxNum: a NaN in x is returned as is, and a NaN in
// y yields x. Shader debugging relies on reproducing exactly this.
func GLSLMax[T constraints.Ordered](x, y T) T {
	if x < y {
		return y
	}
	return x
}

// GLSLMin returns y if y < x, else x. NaN handling mirrors GLSLMax.
func GLSLMin[T constraints.Ordered](x, y T) T {
	if y < x {
		return y
	}
	return x
}

// GLSLClamp is GLSLMin(GLSLMax(x, minVal), maxVal).
func GLSLClamp[T constraints.Ordered](x, minVal, maxVal T) T {
	return GLSLMin(GLSLMax(x, minVal), maxVal)
}
