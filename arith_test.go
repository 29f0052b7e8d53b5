package complexnum

import (
	"math"
	"testing"
)

func TestUnaryOperators(t *testing.T) {
	c := FromCartesian(2.0, 3.4)

	if !c.Neg().Equal(FromCartesian(-2.0, -3.4)) {
		t.Errorf("Neg: got %v", c.Neg())
	}
	if !c.Pos().Equal(c) {
		t.Errorf("Pos: got %v", c.Pos())
	}

	if !c.Inc().Equal(FromCartesian(3.0, 3.4)) {
		t.Errorf("Inc: got %v", c.Inc())
	}
	// Calling again yields the same result: c was not modified.
	if !c.Inc().Equal(FromCartesian(3.0, 3.4)) {
		t.Errorf("Inc (second call): got %v", c.Inc())
	}
	if !c.Dec().Equal(FromCartesian(1.0, 3.4)) {
		t.Errorf("Dec: got %v", c.Dec())
	}
	if !c.Equal(FromCartesian(2.0, 3.4)) {
		t.Errorf("receiver changed to %v", c)
	}

	re, im := c.Components()
	if re != c.Real() || im != c.Imaginary() {
		t.Errorf("Components: got (%v, %v)", re, im)
	}
}

func TestBinaryOperators(t *testing.T) {
	c1 := FromCartesian(2.0, 3.4)
	c2 := FromCartesian(19.5, -7.8)

	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"plus complex", c1.Add(c2), FromCartesian(21.5, -4.4)},
		{"plus float64", AddScalar(c1, 5.4), FromCartesian(7.4, 3.4)},
		{"plus float32", AddScalar(c1, float32(5.3)), FromCartesian(7.3, 3.4)},
		{"plus int", AddScalar(c1, 5), FromCartesian(7.0, 3.4)},
		{"plus int64", AddScalar(c1, int64(6)), FromCartesian(8.0, 3.4)},
		{"plus int64 (7)", AddScalar(c1, int64(7)), FromCartesian(9.0, 3.4)},
		{"plus int8", AddScalar(c1, int8(8)), FromCartesian(10.0, 3.4)},
		{"plus int16", AddScalar(c1, int16(9)), FromCartesian(11.0, 3.4)},

		{"minus complex", c1.Sub(c2), FromCartesian(-17.5, 11.2)},
		{"minus float64", SubScalar(c1, 5.4), FromCartesian(-3.4, 3.4)},
		{"minus float32", SubScalar(c1, float32(5.3)), FromCartesian(-3.3, 3.4)},
		{"minus int", SubScalar(c1, 5), FromCartesian(-3.0, 3.4)},
		{"minus int64", SubScalar(c1, int64(6)), FromCartesian(-4.0, 3.4)},
		{"minus int64 (7)", SubScalar(c1, int64(7)), FromCartesian(-5.0, 3.4)},
		{"minus int8", SubScalar(c1, int8(8)), FromCartesian(-6.0, 3.4)},
		{"minus int16", SubScalar(c1, int16(9)), FromCartesian(-7.0, 3.4)},

		{"times complex", c1.Mul(c2), FromCartesian(65.52, 50.7)},
		{"times float64", MulScalar(c1, 5.4), FromCartesian(10.8, 18.36)},
		{"times float32", MulScalar(c1, float32(5.3)), FromCartesian(10.6, 18.02)},
		{"times int", MulScalar(c1, 5), FromCartesian(10.0, 17.0)},
		{"times int64", MulScalar(c1, int64(6)), FromCartesian(12.0, 20.4)},
		{"times int64 (7)", MulScalar(c1, int64(7)), FromCartesian(14.0, 23.8)},
		{"times int8", MulScalar(c1, int8(8)), FromCartesian(16.0, 27.2)},
		{"times int16", MulScalar(c1, int16(9)), FromCartesian(18.0, 30.6)},

		{"div complex", c1.Div(c2), FromCartesian(0.028293, 0.185676)},
		{"div float64", DivScalar(c1, 5.4), FromCartesian(0.370370, 0.629629)},
		{"div float32", DivScalar(c1, float32(5.3)), FromCartesian(0.377358, 0.641509)},
		{"div int", DivScalar(c1, 5), FromCartesian(0.4, 0.68)},
		{"div int64", DivScalar(c1, int64(6)), FromCartesian(0.333333, 0.566666)},
		{"div int64 (7)", DivScalar(c1, int64(7)), FromCartesian(0.285714, 0.485714)},
		{"div int8", DivScalar(c1, int8(8)), FromCartesian(0.25, 0.425)},
		{"div int16", DivScalar(c1, int16(9)), FromCartesian(0.222222, 0.377777)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

// TestScalarOnLeft covers scalar ⊕ J(x) for every width, i.e. the x + y·i
// literal style: 5.4 + 5.6i, 5.4 - 5.6i, ...
func TestScalarOnLeft(t *testing.T) {
	type row struct {
		name                   string
		plus, minus, times, by Complex
		wantPlus, wantMinus    Complex
		wantTimes, wantBy      Complex
	}

	float64J := J(5.6)
	float32J := J(float32(6.9))
	intJ := J(-3)
	int64J := J(int64(1))
	int8J := J(int8(2))
	int16J := J(int16(8))

	tests := []row{
		{
			name: "float64",
			plus: ScalarAdd(5.4, float64J), minus: ScalarSub(5.4, float64J),
			times: ScalarMul(5.4, float64J), by: ScalarDiv(5.4, float64J),
			wantPlus: FromCartesian(5.4, 5.6), wantMinus: FromCartesian(5.4, -5.6),
			wantTimes: FromCartesian(0, 30.24), wantBy: FromCartesian(0, -0.964285),
		},
		{
			name: "float32",
			plus: ScalarAdd(float32(5.5), float32J), minus: ScalarSub(float32(5.5), float32J),
			times: ScalarMul(float32(5.5), float32J), by: ScalarDiv(float32(5.5), float32J),
			wantPlus: FromCartesian(5.5, 6.9), wantMinus: FromCartesian(5.5, -6.9),
			wantTimes: FromCartesian(0, 37.95), wantBy: FromCartesian(0, -0.797101),
		},
		{
			name: "int",
			plus: ScalarAdd(3, intJ), minus: ScalarSub(3, intJ),
			times: ScalarMul(3, intJ), by: ScalarDiv(3, intJ),
			wantPlus: FromCartesian(3, -3), wantMinus: FromCartesian(3, 3),
			wantTimes: FromCartesian(0, -9), wantBy: FromCartesian(0, 1),
		},
		{
			name: "int64",
			plus: ScalarAdd(int64(9), int64J), minus: ScalarSub(int64(9), int64J),
			times: ScalarMul(int64(9), int64J), by: ScalarDiv(int64(9), int64J),
			wantPlus: FromCartesian(9, 1), wantMinus: FromCartesian(9, -1),
			wantTimes: FromCartesian(0, 9), wantBy: FromCartesian(0, -9),
		},
		{
			name: "int8",
			plus: ScalarAdd(int8(4), int8J), minus: ScalarSub(int8(4), int8J),
			times: ScalarMul(int8(4), int8J), by: ScalarDiv(int8(4), int8J),
			wantPlus: FromCartesian(4, 2), wantMinus: FromCartesian(4, -2),
			wantTimes: FromCartesian(0, 8), wantBy: FromCartesian(0, -2),
		},
		{
			name: "int16",
			plus: ScalarAdd(int16(3), int16J), minus: ScalarSub(int16(3), int16J),
			times: ScalarMul(int16(3), int16J), by: ScalarDiv(int16(3), int16J),
			wantPlus: FromCartesian(3, 8), wantMinus: FromCartesian(3, -8),
			wantTimes: FromCartesian(0, 24), wantBy: FromCartesian(0, -0.375),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := []struct {
				op        string
				got, want Complex
			}{
				{"+", tt.plus, tt.wantPlus},
				{"-", tt.minus, tt.wantMinus},
				{"*", tt.times, tt.wantTimes},
				{"/", tt.by, tt.wantBy},
			}
			for _, c := range checks {
				if !c.got.Equal(c.want) {
					t.Errorf("%s: expected %v, got %v", c.op, c.want, c.got)
				}
			}
		})
	}
}

func TestScalarOrder_NotCommutative(t *testing.T) {
	c := FromCartesian(2.0, 3.4)

	// x - c must be the true difference, not -(c - x) with a sign slip.
	if got, want := ScalarSub(10, c), FromCartesian(8, -3.4); !got.Equal(want) {
		t.Errorf("10 - c: expected %v, got %v", want, got)
	}
	if got, want := ScalarDiv(1, c), c.Conjugate().Div(Of(c.R()*c.R())); !got.Equal(want) {
		t.Errorf("1 / c: expected %v, got %v", want, got)
	}
	if got := ScalarDiv(1, c).Mul(c); !got.Equal(Of(1)) {
		t.Errorf("(1/c)·c: expected 1, got %v", got)
	}

	if !ScalarAdd(uint(7), c).Equal(AddScalar(c, uint(7))) {
		t.Error("scalar + c should equal c + scalar")
	}
	if !ScalarMul(uint16(3), c).Equal(MulScalar(c, uint16(3))) {
		t.Error("scalar × c should equal c × scalar")
	}
}

func TestOfAndJ(t *testing.T) {
	tests := []struct {
		name   string
		of, j  Complex
		wantRe float64
	}{
		{"int", Of(3), J(3), 3},
		{"int8", Of(int8(-4)), J(int8(-4)), -4},
		{"int16", Of(int16(8)), J(int16(8)), 8},
		{"int32", Of(int32(12)), J(int32(12)), 12},
		{"int64", Of(int64(1)), J(int64(1)), 1},
		{"uint8", Of(uint8(200)), J(uint8(200)), 200},
		{"uint64", Of(uint64(5)), J(uint64(5)), 5},
		{"float32", Of(float32(0.5)), J(float32(0.5)), 0.5},
		{"float64", Of(5.6), J(5.6), 5.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.of.Real() != tt.wantRe || tt.of.Imaginary() != 0 {
				t.Errorf("Of: expected (%v, 0), got %v", tt.wantRe, tt.of)
			}
			if tt.j.Real() != 0 || tt.j.Imaginary() != tt.wantRe {
				t.Errorf("J: expected (0, %v), got %v", tt.wantRe, tt.j)
			}
		})
	}
}

func TestDiv_ZeroDivisorPropagatesIEEE(t *testing.T) {
	got := FromCartesian(1, 1).Div(Zero)
	if !got.IsInf() && !got.IsNaN() {
		t.Errorf("expected Inf or NaN components, got %v", got)
	}

	got = Zero.Div(Zero)
	if !math.IsNaN(got.Real()) || !math.IsNaN(got.Imaginary()) {
		t.Errorf("0/0: expected NaN components, got %v", got)
	}
}

func TestSumAndProduct(t *testing.T) {
	xs := []Complex{FromCartesian(2.0, 3.4), FromCartesian(19.5, -7.8)}

	if got := Sum(xs...); !got.Equal(FromCartesian(21.5, -4.4)) {
		t.Errorf("Sum: got %v", got)
	}
	if got := Product(xs...); !got.Equal(FromCartesian(65.52, 50.7)) {
		t.Errorf("Product: got %v", got)
	}
	if got := Sum(); !got.Equal(Zero) {
		t.Errorf("empty Sum: got %v", got)
	}
	if got := Product(); !got.Equal(Of(1)) {
		t.Errorf("empty Product: got %v", got)
	}
}
