package post

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsCompletePost(t *testing.T) {
	p := Post{Title: "First", Content: "Hello world", Author: "Jane", Date: "2024-06-01"}
	p.Normalize()
	require.NoError(t, p.Validate())
}

func TestValidate_ReportsFirstMissingField(t *testing.T) {
	cases := []struct {
		name  string
		p     Post
		field string
		msg   string
	}{
		{"missing title", Post{Content: "c", Author: "a", Date: "2024-06-01"}, "title", "Valid title is required"},
		{"missing content", Post{Title: "t", Author: "a", Date: "2024-06-01"}, "content", "Valid content is required"},
		{"missing author", Post{Title: "t", Content: "c", Date: "2024-06-01"}, "author", "Valid author is required"},
		{"missing date", Post{Title: "t", Content: "c", Author: "a"}, "date", "Valid date is required"},
		{"blank author", Post{Title: "t", Content: "c", Author: "   ", Date: "2024-06-01"}, "author", "Valid author is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.p.Normalize()
			err := tc.p.Validate()
			require.Error(t, err)
			verr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			require.Equal(t, tc.field, verr.Field)
			require.Equal(t, tc.msg, verr.Message)
		})
	}
}

func TestValidate_RejectsMalformedDates(t *testing.T) {
	for _, date := range []string{"2023-13-40", "2023-02-30", "06/01/2024", "2024-6-1", "yesterday"} {
		p := Post{Title: "t", Content: "c", Author: "a", Date: date}
		p.Normalize()
		err := p.Validate()
		require.Error(t, err, "date %q should be rejected", date)
		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Equal(t, "date", verr.Field)
		require.Equal(t, "Date must be YYYY-MM-DD", verr.Message)
	}
}

func TestNormalize_TrimsAllFields(t *testing.T) {
	p := Post{Title: "  t ", Content: " c\n", Author: "\ta", Date: " 2024-06-01 "}
	p.Normalize()
	require.Equal(t, "t", p.Title)
	require.Equal(t, "c", p.Content)
	require.Equal(t, "a", p.Author)
	require.Equal(t, "2024-06-01", p.Date)
	require.NoError(t, p.Validate())
}

func TestFilterEmpty(t *testing.T) {
	require.True(t, Filter{}.Empty())
	require.False(t, Filter{Author: "jane"}.Empty())
}
