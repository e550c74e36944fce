package session

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"frontinsert/internal/array"
	"frontinsert/internal/input"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quiet() *Session {
	return New(Options{Logger: zap.NewNop()})
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantBefore []int
		wantAfter  []int
		wantOut    string
	}{
		{
			name:       "three elements",
			in:         "3\n10 20 30\n5\n",
			wantBefore: []int{10, 20, 30},
			wantAfter:  []int{5, 10, 20, 30},
			wantOut: "Array before insertion:\na[0]= 10\na[1]= 20\na[2]= 30\n" +
				"Array after insertion:\na[0]= 5\na[1]= 10\na[2]= 20\na[3]= 30\n",
		},
		{
			name:       "empty array",
			in:         "0 99",
			wantBefore: []int{},
			wantAfter:  []int{99},
			wantOut:    "Array before insertion:\nArray after insertion:\na[0]= 99\n",
		},
		{
			name:       "single element",
			in:         "1\n7\n3\n",
			wantBefore: []int{7},
			wantAfter:  []int{3, 7},
			wantOut:    "Array before insertion:\na[0]= 7\nArray after insertion:\na[0]= 3\na[1]= 7\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			res, err := quiet().Run(strings.NewReader(tt.in), &out)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantBefore, res.Before); diff != "" {
				t.Errorf("before (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantAfter, res.After); diff != "" {
				t.Errorf("after (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantAfter[0], res.Inserted)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestRun_Prompts(t *testing.T) {
	var out strings.Builder
	s := New(Options{ShowPrompts: true, Logger: zap.NewNop()})

	_, err := s.Run(strings.NewReader("2 1 2 0"), &out)
	require.NoError(t, err)

	want := "Enter no. of elements in array:" +
		"Enter element a[0]:" +
		"Enter element a[1]:" +
		"Array before insertion:\na[0]= 1\na[1]= 2\n" +
		"Enter the element to insert at front:" +
		"Array after insertion:\na[0]= 0\na[1]= 1\na[2]= 2\n"
	assert.Equal(t, want, out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		wantErr  error
		contains string
	}{
		{"negative count", "-1", 0, array.ErrInvalidCount, "-1"},
		{"count over limit", "5 1 2 3 4 5 0", 4, array.ErrInvalidCount, "exceeds limit 4"},
		{"max int count without limit", strconv.Itoa(math.MaxInt), 0, array.ErrInvalidCount, "exceeds maximum"},
		{"count above buffer maximum without limit", strconv.Itoa(array.MaxLen + 1), 0, array.ErrInvalidCount, "exceeds maximum"},
		{"malformed count", "abc", 0, input.ErrInput, "reading count"},
		{"missing count", "", 0, input.ErrInput, "reading count"},
		{"malformed element", "2 1 x", 0, input.ErrInput, "reading a[1]"},
		{"truncated elements", "3 1 2", 0, input.ErrInput, "reading a[2]"},
		{"missing front", "1 1", 0, input.ErrInput, "reading front"},
		{"malformed front", "1 1 ?", 0, input.ErrInput, "reading front"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{MaxCount: tt.max, Logger: zap.NewNop()})
			res, err := s.Run(strings.NewReader(tt.in), &strings.Builder{})

			assert.Nil(t, res)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestRun_LimitAllowsExactCount(t *testing.T) {
	s := New(Options{MaxCount: 2, Logger: zap.NewNop()})
	res, err := s.Run(strings.NewReader("2 8 9 7"), &strings.Builder{})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, res.After)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_WriteError(t *testing.T) {
	_, err := quiet().Run(strings.NewReader("1 1 2"), failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write output")
}

func TestRun_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(Options{Logger: zap.New(core)})

	_, err := s.Run(strings.NewReader("1 4 2"), &strings.Builder{})
	require.NoError(t, err)

	done := logs.FilterMessage("front insertion complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, "session", done[0].LoggerName)
	assert.EqualValues(t, 2, done[0].ContextMap()["inserted"])

	assert.Equal(t, 3, logs.FilterLoggerName("input").FilterMessage("read value").Len())
	assert.Equal(t, 1, logs.FilterLoggerName("buffer").FilterMessage("shifted right").Len())
}
