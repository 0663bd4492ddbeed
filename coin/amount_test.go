package coin

import (
	"strings"
	"testing"

	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/weavetest/assert"
	. "github.com/smartystreets/goconvey/convey"
)

// maxAmount is 2^128 - 1
const maxAmount = "340282366920938463463374607431768211455"

func TestParseAmount(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    string
		wantErr *errors.Error
	}{
		"zero":              {raw: "0", want: "0"},
		"small":             {raw: "1000000", want: "1000000"},
		"largest value":     {raw: maxAmount, want: maxAmount},
		"one too many":      {raw: "340282366920938463463374607431768211456", wantErr: errors.ErrOverflow},
		"way too big":       {raw: strings.Repeat("9", 90), wantErr: errors.ErrOverflow},
		"empty":             {raw: "", wantErr: errors.ErrAmount},
		"negative":          {raw: "-1", wantErr: errors.ErrAmount},
		"explicit sign":     {raw: "+1", wantErr: errors.ErrAmount},
		"fraction":          {raw: "1.5", wantErr: errors.ErrAmount},
		"surrounding space": {raw: " 1", wantErr: errors.ErrAmount},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			a, err := ParseAmount(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, a.String())
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	Convey("Given amounts", t, func() {
		max := MustParseAmount(maxAmount)
		one := NewAmount(1)

		Convey("Add detects overflow above 128 bits", func() {
			_, err := max.Add(one)
			So(errors.ErrOverflow.Is(err), ShouldBeTrue)

			sum, err := NewAmount(40).Add(NewAmount(2))
			So(err, ShouldBeNil)
			So(sum.Equals(NewAmount(42)), ShouldBeTrue)
		})

		Convey("Sub never goes negative", func() {
			_, err := one.Sub(NewAmount(2))
			So(errors.ErrAmount.Is(err), ShouldBeTrue)

			diff, err := NewAmount(1000000).Sub(NewAmount(10000))
			So(err, ShouldBeNil)
			So(diff.String(), ShouldEqual, "990000")
		})

		Convey("MulDiv uses wide intermediates", func() {
			// max * max does not fit 128 bits but the quotient does.
			res, err := max.MulDiv(max, max)
			So(err, ShouldBeNil)
			So(res.Equals(max), ShouldBeTrue)

			_, err = max.MulDiv(NewAmount(2), one)
			So(errors.ErrOverflow.Is(err), ShouldBeTrue)

			_, err = max.MulDiv(one, Amount{})
			So(errors.ErrInput.Is(err), ShouldBeTrue)
		})

		Convey("MulDiv rounds down", func() {
			res, err := NewAmount(199).MulDiv(NewAmount(1), NewAmount(100))
			So(err, ShouldBeNil)
			So(res.String(), ShouldEqual, "1")

			half, err := NewAmount(990001).Quo(2)
			So(err, ShouldBeNil)
			So(half.String(), ShouldEqual, "495000")
		})
	})
}

func TestAmountJSON(t *testing.T) {
	a := MustParseAmount(maxAmount)
	raw, err := a.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, `"`+maxAmount+`"`, string(raw))

	var fromString Amount
	assert.Nil(t, fromString.UnmarshalJSON(raw))
	assert.Equal(t, true, fromString.Equals(a))

	var fromNumber Amount
	assert.Nil(t, fromNumber.UnmarshalJSON([]byte("2000000")))
	assert.Equal(t, "2000000", fromNumber.String())

	var invalid Amount
	if err := invalid.UnmarshalJSON([]byte(`"-3"`)); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %+v", err)
	}
}
