package gmail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraphs become blank lines",
			html: "<p>Hello,</p><p>how are you?</p>",
			want: "Hello,\n\nhow are you?",
		},
		{
			name: "br becomes newline",
			html: "line one<br>line two<br/>line three",
			want: "line one\nline two\nline three",
		},
		{
			name: "style and head are dropped",
			html: "<head><title>x</title></head><style>p{color:red}</style><p>body text</p>",
			want: "body text",
		},
		{
			name: "entities are decoded",
			html: "<div>fish &amp; chips &gt; salad</div>",
			want: "fish & chips > salad",
		},
		{
			name: "inline tags are stripped in place",
			html: "we <b>really</b> should <a href=\"x\">meet</a> soon",
			want: "we really should meet soon",
		},
		{
			name: "comments are removed",
			html: "<!-- preheader -->actual content",
			want: "actual content",
		},
		{
			name: "runs of blank lines collapse",
			html: "<div>a</div><div></div><div></div><div>b</div>",
			want: "a\n\nb",
		},
		{
			name: "empty input",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlToText(tt.html))
		})
	}
}
