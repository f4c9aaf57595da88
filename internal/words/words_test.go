package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestNewNormalizesAndSorts(t *testing.T) {
	d := New(5, []string{"zebra", " Crane ", "CRANE", "abc", "toolong", "ab1de", "apple"})
	assert.Equal(t, []string{"APPLE", "CRANE", "ZEBRA"}, d.Words())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 5, d.Length())
	assert.Equal(t, "APPLE", d.At(0))
}

func TestContains(t *testing.T) {
	d := New(5, []string{"crane", "apple", "zebra"})
	tests := []struct {
		word string
		want bool
	}{
		{"CRANE", true},
		{"crane", true},
		{"APPLE", true},
		{"ZEBRA", true},
		{"AAAAA", false},
		{"ZZZZZ", false},
		{"CRAN ", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Contains(tt.word))
		})
	}
}

func TestRandomPicksMember(t *testing.T) {
	d := New(5, []string{"crane", "apple", "zebra"})
	for i := 0; i < 50; i++ {
		w, err := d.Random()
		require.NoError(t, err)
		assert.True(t, d.Contains(w))
	}
	_, err := New(5, nil).Random()
	assert.ErrorIs(t, err, ErrEmpty)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomReportsEntropyFailure(t *testing.T) {
	orig := randReader
	randReader = failingReader{}
	t.Cleanup(func() { randReader = orig })

	w, err := New(5, []string{"crane", "apple"}).Random()
	assert.Error(t, err)
	assert.Empty(t, w)
}

func TestWordsIsCopy(t *testing.T) {
	d := New(5, []string{"crane"})
	w := d.Words()
	w[0] = "XXXXX"
	assert.True(t, d.Contains("CRANE"))
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load(Source{})
	require.NoError(t, err)
	a, g := l.Stats()
	assert.Greater(t, a, 100)
	assert.GreaterOrEqual(t, g, a)
	for _, w := range l.Answers.Words() {
		require.True(t, l.Allowed.Contains(w), "answer %s must be allowed", w)
	}
	for _, w := range []string{"ALLEY", "LEVEL", "SPEED", "ERASE", "CRANE"} {
		assert.True(t, l.Allowed.Contains(w), w)
	}
}

func TestLoadBothFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "# answers\ncrane\nslate\n")
	all := writeList(t, "allowed.txt", "irate\n\nroate\n")
	l, err := Load(Source{AnswersFile: ans, AllowedFile: all})
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, l.Answers.Words())
	assert.Equal(t, []string{"CRANE", "IRATE", "ROATE", "SLATE"}, l.Allowed.Words())
}

func TestLoadAllowedOnly(t *testing.T) {
	all := writeList(t, "allowed.txt", "crane\nslate\n")
	l, err := Load(Source{AllowedFile: all})
	require.NoError(t, err)
	assert.Equal(t, l.Answers.Words(), l.Allowed.Words())
}

func TestLoadCustomLength(t *testing.T) {
	all := writeList(t, "allowed.txt", "tree\ncrane\nword\n")
	l, err := Load(Source{AllowedFile: all, Length: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"TREE", "WORD"}, l.Answers.Words())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(Source{AllowedFile: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := writeList(t, "allowed.txt", "# nothing here\nab\n")
	_, err = Load(Source{AllowedFile: empty})
	assert.ErrorIs(t, err, ErrEmptyAnswers)
}
