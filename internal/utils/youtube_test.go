package utils

import "testing"

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "watch link",
			raw:  "https://www.youtube.com/watch?v=abc123",
			want: "https://www.youtube.com/embed/abc123",
			ok:   true,
		},
		{
			name: "watch link with extra params",
			raw:  "https://www.youtube.com/watch?v=abc123&t=5",
			want: "https://www.youtube.com/embed/abc123",
			ok:   true,
		},
		{
			name: "short link",
			raw:  "https://youtu.be/abc123",
			want: "https://www.youtube.com/embed/abc123",
			ok:   true,
		},
		{
			name: "short link with query",
			raw:  "https://youtu.be/abc123?t=5",
			want: "https://www.youtube.com/embed/abc123",
			ok:   true,
		},
		{
			name: "not a url",
			raw:  "not a url",
			ok:   false,
		},
		{
			name: "unrelated host",
			raw:  "https://example.com/watch?x=1",
			ok:   false,
		},
		{
			name: "empty",
			raw:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EmbedURL(tt.raw)
			if ok != tt.ok {
				t.Fatalf("EmbedURL(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("EmbedURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
