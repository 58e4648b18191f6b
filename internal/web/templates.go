package web

// pageTemplate is the html/template for the portfolio page. Every section
// is a named template "section-<anchor>" whose root element carries the
// anchor as its id.
const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en" data-theme="{{.Mode}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="color-scheme" content="{{.Mode}}">
  <title>{{.Profile.Name}}{{with .Profile.Headline}} · {{.}}{{end}}</title>
  <style>
    :root {
      --bg: {{.Palette.Background}};
      --surface: {{.Palette.Surface}};
      --border: {{.Palette.SurfaceHighlight}};
      --text: {{.Palette.Text}};
      --text-dim: {{.Palette.TextDim}};
      --text-muted: {{.Palette.TextMuted}};
      --accent: {{.Palette.Accent}};
      --accent-strong: {{.Palette.AccentStrong}};
      --success: {{.Palette.Success}};
    }
    * { box-sizing: border-box; }
    html { scroll-behavior: smooth; scroll-padding-top: 4.5rem; }
    body { margin: 0; background: var(--bg); color: var(--text); font: 16px/1.6 system-ui, sans-serif; }
    header { position: sticky; top: 0; background: var(--bg); border-bottom: 1px solid var(--border); z-index: 10; }
    header nav { max-width: 960px; margin: 0 auto; display: flex; gap: 1rem; align-items: center; padding: .75rem 1rem; flex-wrap: wrap; }
    header a { color: var(--text-dim); text-decoration: none; }
    header a:hover, header a:focus { color: var(--accent); }
    header .brand { color: var(--accent); font-weight: 700; margin-right: auto; }
    header form, header .toggle { margin: 0; }
    header button, header .toggle { background: none; border: 1px solid var(--border); color: var(--text); border-radius: 6px; padding: .25rem .6rem; cursor: pointer; font: inherit; }
    main { max-width: 960px; margin: 0 auto; padding: 0 1rem 4rem; }
    section { padding: 2.5rem 0 1rem; }
    section:target h2 { color: var(--accent); }
    h1 { font-size: 2.6rem; margin: 0; color: var(--accent); }
    h2 { text-transform: uppercase; letter-spacing: .08em; color: var(--accent-strong); font-size: 1.1rem; }
    a { color: var(--accent); }
    .dim { color: var(--text-dim); }
    .muted { color: var(--text-muted); }
    .card { background: var(--surface); border: 1px solid var(--border); border-radius: 10px; padding: 1rem 1.25rem; margin: 1rem 0; }
    .card-head { display: flex; justify-content: space-between; gap: 1rem; flex-wrap: wrap; }
    .card h3 { margin: 0; font-size: 1.05rem; }
    .chips { display: flex; flex-wrap: wrap; gap: .4rem; padding: 0; list-style: none; }
    .chips li { background: var(--bg); color: var(--accent); border: 1px solid var(--border); border-radius: 999px; padding: 0 .6rem; font-size: .85rem; }
    .skill { display: grid; grid-template-columns: 12rem 1fr 3rem; gap: .75rem; align-items: center; margin: .35rem 0; }
    .bar { height: .55rem; background: var(--border); border-radius: 999px; overflow: hidden; }
    .bar span { display: block; height: 100%; background: var(--accent); }
    .cert::before { content: "✓ "; color: var(--success); }
    @media (max-width: 720px) {
      header nav .links { display: none; }
      header nav details[open] .links { display: flex; flex-direction: column; }
      .skill { grid-template-columns: 1fr 3rem; }
      .skill .bar { grid-column: 1 / -1; }
    }
    @media (min-width: 721px) { header nav details summary { display: none; } header nav details .links { display: flex; gap: 1rem; } }
  </style>
</head>
<body>
  <header>
    <nav aria-label="Sections">
      <a class="brand" href="#hero">{{.Profile.Name}}</a>
      <details open>
        <summary>Menu</summary>
        <div class="links">
          {{range .Nav}}<a href="#{{.ID}}">{{.Label}}</a>
          {{end}}
        </div>
      </details>
      {{if .ToggleAction}}<form method="post" action="{{.ToggleAction}}"><input type="hidden" name="mode" value="{{.Mode}}"><button type="submit" aria-label="Toggle theme">{{if .Dark}}☀ light{{else}}☾ dark{{end}}</button></form>
      {{else if .ToggleHref}}<a class="toggle" href="{{.ToggleHref}}" aria-label="Toggle theme">{{if .Dark}}☀ light{{else}}☾ dark{{end}}</a>{{end}}
    </nav>
  </header>
  <main>
    {{range .Sections}}{{.}}
    {{end}}
  </main>
</body>
</html>
{{end}}

{{define "section-hero"}}<section id="hero">
  <h1>{{.Profile.Name}}</h1>
  {{with .Profile.Headline}}<p><strong>{{.}}</strong></p>{{end}}
  {{with .Profile.Tagline}}<p class="dim">{{.}}</p>{{end}}
  {{with .Profile.Location}}<p class="muted">⌖ {{.}}</p>{{end}}
</section>{{end}}

{{define "section-about"}}<section id="about">
  <h2>About</h2>
  {{md .Profile.About}}
  {{with .Profile.Technologies}}<p class="dim">Recently working with:</p>
  <ul class="chips">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
</section>{{end}}

{{define "section-experience"}}<section id="experience">
  <h2>Experience</h2>
  {{range .Profile.Experience}}<article class="card">
    <div class="card-head"><h3>{{.Title}}</h3><span class="muted">{{.Period}}</span></div>
    <div class="dim">{{.Company}}{{with .Location}} · {{.}}{{end}}</div>
    {{with .Highlights}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{with .Achievements}}<p class="dim">Achievements</p><ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{with .Skills}}<ul class="chips">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </article>{{end}}
</section>{{end}}

{{define "section-education"}}<section id="education">
  <h2>Education</h2>
  {{range .Profile.Education}}<article class="card">
    <div class="card-head"><h3>{{.Degree}}</h3><span class="muted">{{.Period}}</span></div>
    <div class="dim">{{.School}}</div>
    {{with .Details}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </article>{{end}}
</section>{{end}}

{{define "section-publications"}}<section id="publications">
  <h2>Publications</h2>
  {{range .Profile.Publications}}<article class="card" id="pub-{{.Slug}}">
    <div class="card-head"><h3>{{.Title}}</h3><span class="muted">{{.Journal}}{{if .Year}} ({{.Year}}){{end}}</span></div>
    {{with .Authors}}<div class="dim">{{.}}</div>{{end}}
    {{md .Abstract}}
    {{with .Keywords}}<ul class="chips">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    <p>{{with .DOI}}<a href="https://doi.org/{{.}}">doi:{{.}}</a> {{end}}{{with .ArxivID}}<a href="https://arxiv.org/abs/{{.}}">arXiv:{{.}}</a>{{end}}</p>
  </article>{{end}}
</section>{{end}}

{{define "section-certifications"}}<section id="certifications">
  <h2>Certifications</h2>
  <ul>{{range .Profile.Certifications}}<li class="cert">{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}{{with .Issuer}} <span class="muted">· {{.}}</span>{{end}}{{with .Date}} <span class="muted">· {{.}}</span>{{end}}</li>{{end}}</ul>
</section>{{end}}

{{define "section-projects"}}<section id="projects">
  <h2>Projects</h2>
  {{range .Profile.Projects}}<article class="card">
    <h3>{{.Title}}</h3>
    {{md .Description}}
    {{with .Tech}}<ul class="chips">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    <p>{{with .Repo}}<a href="{{.}}">source</a> {{end}}{{with .URL}}<a href="{{.}}">site</a>{{end}}</p>
  </article>{{end}}
</section>{{end}}

{{define "section-skills"}}<section id="skills">
  <h2>Skills</h2>
  {{range .Profile.Skills}}<h3>{{.Title}}</h3>
  {{range .Skills}}<div class="skill" title="{{.Description}}"><span>{{.Name}}</span><div class="bar"><span style="width: {{.Level}}%"></span></div><span class="muted">{{.Level}}%</span></div>
  {{end}}{{end}}
</section>{{end}}

{{define "section-contact"}}<section id="contact">
  <h2>Contact</h2>
  {{with .Profile.Contact}}{{md .Message}}
  {{with .Email}}<p><a href="mailto:{{.}}">{{.}}</a></p>{{end}}
  {{with .Links}}<ul>{{range .}}<li><a href="{{.URL}}">{{.Label}}</a></li>{{end}}</ul>{{end}}{{end}}
</section>{{end}}
`
