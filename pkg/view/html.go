package view

import (
	"html/template"
	"io"

	"bankist.dev/bankist/pkg/bankist"
)

var page = template.Must(template.New("app").Funcs(template.FuncMap{
	"euro": Euro,
}).Parse(`<p class="welcome">{{.Welcome}}</p>
<main class="app" style="opacity: {{.Opacity}}">
  <div class="balance">
    <p class="balance__label">Current balance</p>
    <p class="balance__value">{{euro .Balance}}</p>
  </div>
  <div class="movements"{{if .Sorted}} data-sorted="true"{{end}}>
{{- range .Rows}}
    <div class="movements__row">
      <div class="movements__type movements__type--{{.Kind}}">{{.Number}} {{.Kind}}</div>
      <div class="movements__value">{{euro .Amount}}</div>
    </div>
{{- end}}
  </div>
  <div class="summary">
    <p class="summary__label">In</p>
    <p class="summary__value summary__value--in">{{euro .Income}}</p>
    <p class="summary__label">Out</p>
    <p class="summary__value summary__value--out">{{euro .Expense}}</p>
    <p class="summary__label">Interest</p>
    <p class="summary__value summary__value--interest">{{euro .Interest}}</p>
  </div>
</main>
`))

type htmlData struct {
	bankist.Display
	Rows    []bankist.MovementRow
	Opacity int
}

// HTML writes the full application markup for d, replacing whatever was
// rendered before. The app container is transparent while logged out.
func HTML(w io.Writer, d bankist.Display) error {
	data := htmlData{Display: d, Rows: screenOrder(d.Movements)}
	if d.LoggedIn {
		data.Opacity = 100
	}
	return page.Execute(w, data)
}
