package result

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type parseError struct {
	input string
}

func (e *parseError) Error() string {
	return "cannot parse " + strconv.Quote(e.input)
}

func TestSuccess(t *testing.T) {
	require := require.New(t)

	r := Success[int, error](42)
	require.True(r.IsSuccess())
	require.False(r.IsFailure())
	require.Equal(42, r.Get())
}

func TestFailure(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("test err")
	r := Failure[int](errTest)
	require.False(r.IsSuccess())
	require.True(r.IsFailure())
}

func TestGet_PanicsWithStoredError(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("boom")
	r := Failure[string](errTest)
	require.PanicsWithValue(errTest, func() { r.Get() })
}

func TestGetOrNil(t *testing.T) {
	require := require.New(t)

	v := Success[int, error](7).GetOrNil()
	require.NotNil(v)
	require.Equal(7, *v)

	require.Nil(Failure[int](errors.New("no")).GetOrNil())
}

func TestGetFailureOrNil(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("no")
	e := Failure[int](errTest).GetFailureOrNil()
	require.NotNil(e)
	require.Equal(errTest, *e)

	require.Nil(Success[int, error](1).GetFailureOrNil())
}

func TestDestructure_ExactlyOneSide(t *testing.T) {
	require := require.New(t)

	v, e := Success[string, error]("ok").Destructure()
	require.NotNil(v)
	require.Nil(e)
	require.Equal("ok", *v)

	errTest := errors.New("bad")
	v, e = Failure[string](errTest).Destructure()
	require.Nil(v)
	require.NotNil(e)
	require.Equal(errTest, *e)
}

func TestGetOrElse(t *testing.T) {
	require := require.New(t)

	require.Equal(5, Success[int, error](5).GetOrElse(func(error) int { return 0 }))
	require.Equal(0, Failure[int](errors.New("e")).GetOrElse(func(error) int { return 0 }))
}

func TestEqual_Structural(t *testing.T) {
	require := require.New(t)

	require.True(Success[int, error](1).Equal(Success[int, error](1)))
	require.False(Success[int, error](1).Equal(Success[int, error](2)))

	errTest := errors.New("same")
	require.True(Failure[int](errTest).Equal(Failure[int](errTest)))
	require.False(Success[int, error](0).Equal(Failure[int](errTest)))

	// comparable payloads also support ==
	require.True(Success[int, error](1) == Success[int, error](1))
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("Success(3)", Success[int, error](3).String())
	require.Equal("Failure(hm)", Failure[int](errors.New("hm")).String())
}

func TestOf_Success(t *testing.T) {
	require := require.New(t)

	r := Of[int, *parseError](func() (int, error) {
		return strconv.Atoi("41")
	})
	require.True(r.IsSuccess())
	require.Equal(41, r.Get())
}

func TestOf_InterceptsMatchingError(t *testing.T) {
	require := require.New(t)

	errParse := &parseError{input: "x"}
	r := Of[int, *parseError](func() (int, error) {
		return 0, fmt.Errorf("reading field: %w", errParse)
	})
	require.True(r.IsFailure())
	require.Equal(errParse, *r.GetFailureOrNil())
}

func TestOf_UnmatchedErrorPanics(t *testing.T) {
	require := require.New(t)

	errOther := errors.New("disk on fire")
	require.PanicsWithValue(errOther, func() {
		Of[int, *parseError](func() (int, error) {
			return 0, errOther
		})
	})
}

func TestOf_TypedNilErrorIsSuccess(t *testing.T) {
	require := require.New(t)

	r := Of[int, *parseError](func() (int, error) {
		var e *parseError
		return 9, e
	})
	require.True(r.IsSuccess())
	require.Equal(9, r.Get())
}

func TestCapture_RecoversMatchingError(t *testing.T) {
	require := require.New(t)

	errParse := &parseError{input: "y"}
	r := Capture[int, *parseError](func() int {
		panic(errParse)
	})
	require.True(r.IsFailure())
	require.Equal(errParse, *r.GetFailureOrNil())
}

func TestCapture_Success(t *testing.T) {
	require := require.New(t)

	r := Capture[int, *parseError](func() int { return 8 })
	require.Equal(8, r.Get())
}

func TestCapture_UnmatchedPanicResumes(t *testing.T) {
	require := require.New(t)

	errOther := errors.New("unrelated")
	require.PanicsWithValue(errOther, func() {
		Capture[int, *parseError](func() int { panic(errOther) })
	})
	require.PanicsWithValue("not even an error", func() {
		Capture[int, *parseError](func() int { panic("not even an error") })
	})
}

func TestAs(t *testing.T) {
	require := require.New(t)

	errParse := &parseError{input: "z"}
	e, ok := As[*parseError](fmt.Errorf("wrapped: %w", errParse))
	require.True(ok)
	require.Equal(errParse, e)

	_, ok = As[*parseError](errors.New("plain"))
	require.False(ok)
}

func TestIsNil(t *testing.T) {
	require := require.New(t)

	require.True(IsNil(nil))
	var e *parseError
	require.True(IsNil(e))
	require.False(IsNil(errors.New("x")))
}
