package error

import (
	"errors"
	"testing"
)

func TestKeyError(t *testing.T) {
	cause := errors.New("syntax error: invalid color 'x' in the 1st layer, 2nd quad")

	tests := []struct {
		caption string
		err     *KeyError
		want    string
	}{
		{
			caption: "a full diagnostic shows the source, the key, and the offending span",
			err: &KeyError{
				Cause:      cause,
				SourceName: "keys.txt",
				Row:        3,
				Key:        "CwCx----",
				Start:      3,
				End:        4,
			},
			want: `keys.txt: 3: error: syntax error: invalid color 'x' in the 1st layer, 2nd quad
    CwCx----
       ^`,
		},
		{
			caption: "the source name and row are omitted when unknown",
			err: &KeyError{
				Cause: cause,
				Key:   "CwCx----",
				Start: 3,
				End:   4,
			},
			want: `error: syntax error: invalid color 'x' in the 1st layer, 2nd quad
    CwCx----
       ^`,
		},
		{
			caption: "a span can cover multiple characters",
			err: &KeyError{
				Cause:      errors.New("syntax error: the 1st layer is empty"),
				SourceName: "stdin",
				Row:        1,
				Key:        "--------",
				Start:      0,
				End:        8,
			},
			want: `stdin: 1: error: syntax error: the 1st layer is empty
    --------
    ^^^^^^^^`,
		},
		{
			caption: "no marker is printed for an empty span",
			err: &KeyError{
				Cause: errors.New("syntax error: empty input"),
			},
			want: `error: syntax error: empty input`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Fatalf("unexpected message;\nwant:\n%v\ngot:\n%v", tt.want, got)
			}
		})
	}
}

func TestKeyErrors(t *testing.T) {
	errs := KeyErrors{
		{
			Cause: errors.New("syntax error: invalid sub-shape 'X' in the 1st layer, 1st quad"),
			Key:   "Xx------",
			Start: 0,
			End:   1,
		},
		{
			Cause: errors.New("syntax error: invalid color 'x' in the 1st layer, 1st quad"),
			Key:   "Xx------",
			Start: 1,
			End:   2,
		},
	}
	want := `error: syntax error: invalid sub-shape 'X' in the 1st layer, 1st quad
    Xx------
    ^
error: syntax error: invalid color 'x' in the 1st layer, 1st quad
    Xx------
     ^`
	got := errs.Error()
	if got != want {
		t.Fatalf("unexpected message;\nwant:\n%v\ngot:\n%v", want, got)
	}
}
