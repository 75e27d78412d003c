package records

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
)

type record struct {
	pair domain.WordPair
	err  error
}

func readAll(t *testing.T, r *Reader) []record {
	t.Helper()
	var out []record
	for pair, err := range r.Records() {
		out = append(out, record{pair: pair, err: err})
	}
	return out
}

func newStringReader(t *testing.T, input string, cfg Config) *Reader {
	t.Helper()
	r, err := FromReader(strings.NewReader(input), cfg, logger.Nop{})
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	return r
}

func TestRecordsDecodesPairs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []domain.WordPair
	}{
		{
			name:  "unix line endings",
			input: "cot,cat\nkitten,sitting\n",
			want:  []domain.WordPair{domain.NewWordPair("cot", "cat"), domain.NewWordPair("kitten", "sitting")},
		},
		{
			name:  "windows line endings",
			input: "cot,cat\r\nrose,rows\r\n",
			want:  []domain.WordPair{domain.NewWordPair("cot", "cat"), domain.NewWordPair("rose", "rows")},
		},
		{
			name:  "byte order mark",
			input: "\ufeffnaïve,naive\n",
			want:  []domain.WordPair{domain.NewWordPair("naïve", "naive")},
		},
		{
			name:  "trailing delimiter",
			input: "cot,cat,\n",
			want:  []domain.WordPair{domain.NewWordPair("cot", "cat")},
		},
		{
			name:  "quoted field",
			input: "\"a,b\",ab\n",
			want:  []domain.WordPair{domain.NewWordPair("a,b", "ab")},
		},
		{
			name:  "blank lines skipped",
			input: "cot,cat\n\nrose,rows",
			want:  []domain.WordPair{domain.NewWordPair("cot", "cat"), domain.NewWordPair("rose", "rows")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := readAll(t, newStringReader(t, tc.input, DefaultConfig()))
			if len(got) != len(tc.want) {
				t.Fatalf("got %d records, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, rec := range got {
				if rec.err != nil {
					t.Fatalf("record %d: unexpected error %v", i, rec.err)
				}
				if rec.pair != tc.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, rec.pair, tc.want[i])
				}
			}
		})
	}
}

func TestRecordsWindows1252(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Encoding = "windows-1252"

	got := readAll(t, newStringReader(t, "caf\xe9,cafe\n", cfg))
	if len(got) != 1 || got[0].err != nil {
		t.Fatalf("unexpected records: %+v", got)
	}
	if got[0].pair.First != "café" {
		t.Errorf("First = %q, want %q", got[0].pair.First, "café")
	}
}

func TestRecordsUTF16WithBOM(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Encoding = "utf-16le"

	// "ab,ba\n" in UTF-16LE, preceded by a byte order mark.
	input := "\xff\xfea\x00b\x00,\x00b\x00a\x00\n\x00"
	got := readAll(t, newStringReader(t, input, cfg))
	if len(got) != 1 || got[0].err != nil {
		t.Fatalf("unexpected records: %+v", got)
	}
	if got[0].pair != domain.NewWordPair("ab", "ba") {
		t.Errorf("pair = %+v, want (ab, ba)", got[0].pair)
	}
}

func TestRecordsMalformed(t *testing.T) {
	input := "cot,cat\nlonely\na,b,c\nrose,rows\n"
	got := readAll(t, newStringReader(t, input, DefaultConfig()))
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4: %+v", len(got), got)
	}

	for _, i := range []int{1, 2} {
		var malformed *domain.MalformedRecordError
		if !errors.As(got[i].err, &malformed) {
			t.Fatalf("record %d: expected MalformedRecordError, got %v", i, got[i].err)
		}
		if !errors.Is(got[i].err, domain.ErrMalformedRecord) {
			t.Errorf("record %d: expected errors.Is ErrMalformedRecord", i)
		}
		if malformed.Line != i+1 {
			t.Errorf("record %d: Line = %d, want %d", i, malformed.Line, i+1)
		}
	}
	if got[3].pair != domain.NewWordPair("rose", "rows") {
		t.Errorf("reading did not continue after malformed records: %+v", got[3])
	}
}

func TestLinesReportInputLine(t *testing.T) {
	input := "a,b,c\ncot,cat\n\n\"two\nlines\",x\nrose,rows\n"
	var got []Record
	for rec, err := range newStringReader(t, input, DefaultConfig()).Lines() {
		if err != nil {
			continue
		}
		got = append(got, rec)
	}

	want := []Record{
		{Pair: domain.NewWordPair("cot", "cat"), Line: 2},
		{Pair: domain.NewWordPair("two\nlines", "x"), Line: 4},
		{Pair: domain.NewWordPair("rose", "rows"), Line: 6},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecordsSemicolonDelimiter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delimiter = ';'
	got := readAll(t, newStringReader(t, "cot;cat\n", cfg))
	if len(got) != 1 || got[0].pair != domain.NewWordPair("cot", "cat") {
		t.Errorf("unexpected records: %+v", got)
	}
}

func TestFromFileIsRestartable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte("cot,cat\nrose,rows\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := FromFile(path, DefaultConfig(), logger.Nop{})
	if err != nil {
		t.Fatal(err)
	}

	first := readAll(t, r)
	second := readAll(t, r)
	if len(first) != 2 || len(second) != 2 || first[1].pair != second[1].pair {
		t.Errorf("file reader not restartable: %+v vs %+v", first, second)
	}
}

func TestFromFileMissing(t *testing.T) {
	r, err := FromFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultConfig(), logger.Nop{})
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(t, r)
	if len(got) != 1 || !errors.Is(got[0].err, os.ErrNotExist) {
		t.Errorf("expected a single not-exist error, got %+v", got)
	}
}

func TestPairsOnError(t *testing.T) {
	input := "cot,cat\nlonely\nrose,rows\n"

	var reported []error
	var pairs []domain.WordPair
	for pair := range newStringReader(t, input, DefaultConfig()).Pairs(func(err error) bool {
		reported = append(reported, err)
		return true
	}) {
		pairs = append(pairs, pair)
	}
	if len(pairs) != 2 || len(reported) != 1 {
		t.Errorf("got %d pairs and %d errors, want 2 and 1", len(pairs), len(reported))
	}

	pairs = pairs[:0]
	for pair := range newStringReader(t, input, DefaultConfig()).Pairs(nil) {
		pairs = append(pairs, pair)
	}
	if len(pairs) != 1 {
		t.Errorf("nil onError should stop at the first failure, got %d pairs", len(pairs))
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"empty encoding means utf-8", Config{Delimiter: ','}, false},
		{"latin1 label", Config{Encoding: "latin1", Delimiter: ','}, false},
		{"unknown encoding", Config{Encoding: "klingon", Delimiter: ','}, true},
		{"quote delimiter", Config{Encoding: "utf-8", Delimiter: '"'}, true},
		{"missing delimiter", Config{Encoding: "utf-8"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
