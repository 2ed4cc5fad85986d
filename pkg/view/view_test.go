package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankist.dev/bankist/pkg/bankist"
)

func render(t *testing.T, d bankist.Display) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, d))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func rowTexts(doc *goquery.Document) (types, values []string) {
	doc.Find(".movements .movements__row").Each(func(_ int, s *goquery.Selection) {
		types = append(types, strings.TrimSpace(s.Find(".movements__type").Text()))
		values = append(values, strings.TrimSpace(s.Find(".movements__value").Text()))
	})
	return types, values
}

func loggedInDisplay(t *testing.T) (*bankist.Session, bankist.Display) {
	t.Helper()
	s := bankist.NewSession(bankist.NewStore(bankist.DefaultAccounts()))
	d, err := s.Login("js", "1111")
	require.NoError(t, err)
	return s, d
}

func TestHTML_LoggedIn(t *testing.T) {
	_, d := loggedInDisplay(t)
	doc := render(t, d)

	assert.Equal(t, "Welcome back, Jonas!", doc.Find(".welcome").Text())
	assert.Equal(t, "3840€", doc.Find(".balance__value").Text())
	assert.Equal(t, "5020€", doc.Find(".summary__value--in").Text())
	assert.Equal(t, "1180€", doc.Find(".summary__value--out").Text())
	assert.Equal(t, "59.4€", doc.Find(".summary__value--interest").Text())

	style, _ := doc.Find(".app").Attr("style")
	assert.Contains(t, style, "opacity: 100")

	types, values := rowTexts(doc)
	assert.Equal(t, []string{"1300€", "70€", "-130€", "-650€", "3000€", "-400€", "450€", "200€"}, values)
	assert.Equal(t, "8 deposit", types[0])
	assert.Equal(t, "1 deposit", types[7])
	assert.Equal(t, "3 withdrawal", types[5])
	assert.Equal(t, 3, doc.Find(".movements__type--withdrawal").Length())
	assert.Equal(t, 5, doc.Find(".movements__type--deposit").Length())
}

func TestHTML_Sorted(t *testing.T) {
	s, _ := loggedInDisplay(t)
	d, err := s.ToggleSort()
	require.NoError(t, err)
	doc := render(t, d)

	types, values := rowTexts(doc)
	assert.Equal(t, []string{"3000€", "1300€", "450€", "200€", "70€", "-130€", "-400€", "-650€"}, values)
	assert.Equal(t, "8 deposit", types[0])
	assert.Equal(t, "1 withdrawal", types[7])

	_, sorted := doc.Find(".movements").Attr("data-sorted")
	assert.True(t, sorted)
}

func TestHTML_LoggedOut(t *testing.T) {
	s := bankist.NewSession(bankist.NewStore(bankist.DefaultAccounts()))
	doc := render(t, s.View())

	assert.Equal(t, "Log in to get started", doc.Find(".welcome").Text())
	style, _ := doc.Find(".app").Attr("style")
	assert.Contains(t, style, "opacity: 0")
	assert.Equal(t, 0, doc.Find(".movements__row").Length())
}

func TestHTML_EscapesOwner(t *testing.T) {
	s := bankist.NewSession(bankist.NewStore([]*bankist.Account{
		bankist.NewAccount("<b>Mallory</b> Evil", []float64{10}, 1, 1),
	}))
	d, err := s.Login("<e", "1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, d))
	assert.NotContains(t, buf.String(), "<b>Mallory</b>")
	assert.Contains(t, buf.String(), "&lt;b&gt;Mallory&lt;/b&gt;")
}

func TestText(t *testing.T) {
	s, d := loggedInDisplay(t)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, d))
	out := buf.String()
	assert.Contains(t, out, "Welcome back, Jonas!")
	assert.Contains(t, out, "3840€")
	assert.Contains(t, out, "59.4€")
	assert.Contains(t, out, "chronological")
	assert.Less(t, strings.Index(out, "1300€"), strings.Index(out, "3000€"))

	d, err := s.ToggleSort()
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, Text(&buf, d))
	out = buf.String()
	assert.Contains(t, out, "sorted")
	assert.Less(t, strings.Index(out, "3000€"), strings.Index(out, "1300€"))

	buf.Reset()
	require.NoError(t, Text(&buf, s.Logout()))
	assert.Contains(t, buf.String(), "Log in to get started")
	assert.NotContains(t, buf.String(), "€")
}
