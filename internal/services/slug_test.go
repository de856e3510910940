package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Teknoloji", "teknoloji"},
		{"Tasarım", "tasarim"},
		{"Geliştirme", "gelistirme"},
		{"İş Dünyası", "is-dunyasi"},
		{"  ÇOK   Özel Ğ  ", "cok-ozel-g"},
		{"IŞIK", "isik"},
		{"Go & Rust: 2024!", "go-rust-2024"},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), tc.in)
	}
}
