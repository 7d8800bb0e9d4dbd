package errors

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Constants
// =============================================================================

var errStd = errors.New("standard error")

// =============================================================================
// benchmarks
// =============================================================================

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(Internal, "error message")
	}
}

func BenchmarkWrap(b *testing.B) {
	err := errors.New("base error")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(err, Internal, "wrapped message")
	}
}

func BenchmarkRootCause(b *testing.B) {
	// 깊은 에러 체인 생성
	err := errors.New("root")
	for i := 0; i < 50; i++ {
		err = Wrap(err, Internal, "wrap")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RootCause(err)
	}
}

func BenchmarkIs(b *testing.B) {
	// 깊은 에러 체인 생성
	err := New(NotFound, "not found")
	for i := 0; i < 10; i++ {
		err = Wrap(err, Internal, "wrap")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Is(err, NotFound)
	}
}

// =============================================================================
// Basic Error Creation Tests
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{
			name:    "InvalidInput",
			errType: InvalidInput,
			message: "invalid input",
		},
		{
			name:    "Internal",
			errType: Internal,
			message: "internal error",
		},
		{
			name:    "Empty Message",
			errType: NotFound,
			message: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.errType, tt.message)

			assert.NotNil(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, Is(err, tt.errType))
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "error code: %d", 404)

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "error code: 404")
	assert.True(t, Is(err, InvalidInput))
}

// =============================================================================
// Wrapping Tests
// =============================================================================

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("StdError", func(t *testing.T) {
		wrapped := Wrap(errStd, Internal, "wrapped message")

		assert.NotNil(t, wrapped)
		assert.Contains(t, wrapped.Error(), "wrapped message")
		assert.Contains(t, wrapped.Error(), "standard error")
		assert.True(t, Is(wrapped, Internal))
	})

	t.Run("NilError", func(t *testing.T) {
		wrapped := Wrap(nil, Internal, "should be nil")
		assert.Nil(t, wrapped)
	})

	t.Run("Nested", func(t *testing.T) {
		err1 := New(NotFound, "not found")
		err2 := Wrap(err1, Internal, "internal error")
		err3 := Wrap(err2, System, "system error")

		assert.True(t, Is(err3, System))
		assert.True(t, Is(err3, Internal))
		assert.True(t, Is(err3, NotFound))
	})
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	wrapped := Wrapf(errStd, Internal, "error code: %d", 500)

	assert.NotNil(t, wrapped)
	assert.Contains(t, wrapped.Error(), "error code: 500")
	assert.Contains(t, wrapped.Error(), "standard error")
}

func TestWrapf_NilError(t *testing.T) {
	t.Parallel()

	wrapped := Wrapf(nil, Internal, "should be nil")
	assert.Nil(t, wrapped)
}

// =============================================================================
// Edge Cases
// =============================================================================

func TestEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("Long Message", func(t *testing.T) {
		longMsg := strings.Repeat("a", 10000)
		err := New(Internal, longMsg)

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), longMsg)
	})

	t.Run("Deep Chain Stack Overflow Check", func(t *testing.T) {
		err := New(Internal, "base")
		for i := 0; i < 1000; i++ {
			err = Wrap(err, Internal, "wrap")
		}

		// RootCause should not stack overflow
		root := RootCause(err)
		assert.NotNil(t, root)
	})
}

// =============================================================================
// Is Function Tests
// =============================================================================

func TestIs_ChainTraversal(t *testing.T) {
	t.Parallel()

	err1 := New(NotFound, "not found")
	err2 := Wrap(err1, Internal, "internal")
	err3 := Wrap(err2, System, "system")

	assert.True(t, Is(err3, System))
	assert.True(t, Is(err3, Internal))
	assert.True(t, Is(err3, NotFound))
	assert.False(t, Is(err3, InvalidInput))
}

func TestIs(t *testing.T) {
	t.Parallel()

	err := New(InvalidInput, "test")

	assert.True(t, Is(err, InvalidInput))
	assert.False(t, Is(err, Internal))
	assert.False(t, Is(nil, InvalidInput))
}

// =============================================================================
// As Function Tests
// =============================================================================

func TestAs(t *testing.T) {
	t.Parallel()

	err := New(Internal, "test error")

	var appErr *AppError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Internal, appErr.Type())
	assert.Equal(t, "test error", appErr.Message())
}

// =============================================================================
// UnderlyingType Tests
// =============================================================================

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	t.Run("Single AppError", func(t *testing.T) {
		err := New(NotFound, "not found")
		assert.Equal(t, NotFound, UnderlyingType(err))
	})

	t.Run("AppError Chain", func(t *testing.T) {
		// 가장 안쪽 AppError의 타입이 반환되어야 한다.
		err := Wrap(New(NotFound, "not found"), Internal, "query failed")
		assert.Equal(t, NotFound, UnderlyingType(err))
	})

	t.Run("External Error Wrapped", func(t *testing.T) {
		err := Wrap(errStd, Timeout, "request timed out")
		assert.Equal(t, Timeout, UnderlyingType(err))
	})

	t.Run("Nil and Non-AppError", func(t *testing.T) {
		assert.Equal(t, Unknown, UnderlyingType(nil))
		assert.Equal(t, Unknown, UnderlyingType(errStd))
	})
}

// =============================================================================
// RootCause Tests
// =============================================================================

func TestRootCause(t *testing.T) {
	t.Parallel()

	err1 := New(NotFound, "not found")
	err2 := Wrap(err1, Internal, "internal")
	err3 := Wrap(err2, System, "system")

	root := RootCause(err3)
	assert.Equal(t, err1, root)

	assert.Nil(t, RootCause(nil))
}

// =============================================================================
// Unwrap Tests
// =============================================================================

func TestUnwrap(t *testing.T) {
	t.Parallel()

	err1 := New(NotFound, "not found")
	err2 := Wrap(err1, Internal, "internal")

	var appErr *AppError
	require.True(t, As(err2, &appErr))

	unwrapped := appErr.Unwrap()
	assert.Equal(t, err1, unwrapped)
}

// =============================================================================
// Format Tests
// =============================================================================

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	t.Run("Basic Formatting", func(t *testing.T) {
		err := New(Internal, "test error")

		// %s, %v
		assert.Contains(t, fmt.Sprintf("%s", err), "[Internal] test error")
		assert.Contains(t, fmt.Sprintf("%v", err), "[Internal] test error")

		// %q
		quoted := fmt.Sprintf("%q", err)
		assert.Contains(t, quoted, "Internal")
		assert.Contains(t, quoted, "test error")
	})

	t.Run("Detailed Formatting %+v", func(t *testing.T) {
		err := New(InvalidInput, "validation failed")
		detailed := fmt.Sprintf("%+v", err)

		assert.Contains(t, detailed, "[InvalidInput] validation failed")
	})

	t.Run("Internal Wrap Formatting", func(t *testing.T) {
		err1 := New(NotFound, "not found")
		err2 := Wrap(err1, Internal, "query failed")

		detailed := fmt.Sprintf("%+v", err2)
		assert.Contains(t, detailed, "[Internal] query failed")
		assert.Contains(t, detailed, "Caused by:")
		assert.Contains(t, detailed, "[NotFound] not found")
	})
}

// =============================================================================
// Concurrency Tests
// =============================================================================

func TestConcurrentErrorCreation(t *testing.T) {
	t.Parallel()

	const goroutines = 100
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				err := New(Internal, fmt.Sprintf("error %d-%d", id, j))
				assert.NotNil(t, err)
				assert.True(t, Is(err, Internal))
			}
		}(i)
	}

	wg.Wait()
}

func TestConcurrentErrorChainTraversal(t *testing.T) {
	t.Parallel()

	err := New(NotFound, "base")
	for i := 0; i < 10; i++ {
		err = Wrap(err, Internal, fmt.Sprintf("wrap %d", i))
	}

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			assert.True(t, Is(err, NotFound))
			assert.True(t, Is(err, Internal))
			root := RootCause(err)
			assert.NotNil(t, root)
		}()
	}

	wg.Wait()
}

// =============================================================================
// Example Tests
// =============================================================================

func ExampleNew() {
	err := New(NotFound, "resource not found")
	fmt.Println(err)
	// Output: [NotFound] resource not found
}

func ExampleWrap() {
	baseErr := New(System, "listener creation failed")
	wrappedErr := Wrap(baseErr, Internal, "failed to start server")
	fmt.Println(wrappedErr)
	// Output: [Internal] failed to start server: [System] listener creation failed
}

func ExampleIs() {
	err := New(NotFound, "resource not found")
	wrapped := Wrap(err, Internal, "operation failed")

	if Is(wrapped, NotFound) {
		fmt.Println("NotFound error detected in chain")
	}
	// Output: NotFound error detected in chain
}
