package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Табличные тесты маскировки e-mail: длинная/короткая локальная часть,
// невалидный формат, Unicode-локали.
func TestEmail_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "local_gt_2", in: "foobar@example.com", want: "fo***@example.com"},
		{name: "local_len_1", in: "a@ex.com", want: "***@ex.com"},
		{name: "local_len_2", in: "ab@ex.com", want: "***@ex.com"},
		{name: "no_at", in: "no-at-here", want: "***"},
		{name: "multiple_at", in: "a@b@c", want: "***"},
		{name: "preserve_domain", in: "abc.def+tag@EXAMPLE.org", want: "ab***@EXAMPLE.org"},
		{name: "empty", in: "", want: "***"},
		{name: "unicode_local", in: "юзер@пример.рф", want: "юз***@пример.рф"},
		{name: "unicode_local_short", in: "юз@домен", want: "***@домен"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Email(tt.in))
		})
	}
}

// Литералы для токенов/паролей неизменны.
func TestLiterals_TokenAndPassword(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_TOKEN]", Token())
	require.Equal(t, "[REDACTED_PASSWORD]", Password())
}
