package grep

import (
	"bytes"
	"strconv"

	"github.com/fatih/color"
	"github.com/valyala/fastjson"
)

// styles holds the colors used for text output.
type styles struct {
	name  *color.Color
	line  *color.Color
	sep   *color.Color
	match *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		name:  color.New(color.FgMagenta),
		line:  color.New(color.FgGreen),
		sep:   color.New(color.FgCyan),
		match: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.name, s.line, s.sep, s.match} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// printer renders the output of one input.
type printer struct {
	buf      *bytes.Buffer
	name     string
	withName bool
	opts     Options
	styles   styles

	arena   fastjson.Arena
	scratch []byte
}

func newPrinter(buf *bytes.Buffer, name string, withName bool, opts Options, st styles) *printer {
	return &printer{
		buf:      buf,
		name:     name,
		withName: withName,
		opts:     opts,
		styles:   st,
	}
}

// line renders a matching line. locs holds the match bounds within line.
func (p *printer) line(lineNo int, line []byte, locs [][]int) {
	if p.opts.JSON {
		p.jsonLine(lineNo, line, locs)
		return
	}

	if p.opts.OnlyMatching {
		for _, loc := range locs {
			if loc[0] == loc[1] {
				continue
			}
			p.prefix(lineNo)
			p.buf.WriteString(p.styles.match.Sprint(string(line[loc[0]:loc[1]])))
			p.buf.WriteByte('\n')
		}
		return
	}

	p.prefix(lineNo)
	last := 0
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		p.buf.Write(line[last:loc[0]])
		p.buf.WriteString(p.styles.match.Sprint(string(line[loc[0]:loc[1]])))
		last = loc[1]
	}
	p.buf.Write(line[last:])
	p.buf.WriteByte('\n')
}

// count renders the number of matching lines of the input.
func (p *printer) count(n int) {
	if p.opts.JSON {
		obj := p.arena.NewObject()
		obj.Set("path", p.arena.NewString(p.name))
		obj.Set("count", p.arena.NewNumberInt(n))
		p.writeJSON(obj)
		return
	}

	if p.withName {
		p.buf.WriteString(p.styles.name.Sprint(p.name))
		p.buf.WriteString(p.styles.sep.Sprint(":"))
	}
	p.buf.WriteString(strconv.Itoa(n))
	p.buf.WriteByte('\n')
}

func (p *printer) prefix(lineNo int) {
	if p.withName {
		p.buf.WriteString(p.styles.name.Sprint(p.name))
		p.buf.WriteString(p.styles.sep.Sprint(":"))
	}
	if p.opts.LineNumbers {
		p.buf.WriteString(p.styles.line.Sprint(lineNo))
		p.buf.WriteString(p.styles.sep.Sprint(":"))
	}
}

// jsonLine renders one object per line:
//
//	{"path":"a.txt","line":3,"text":"x12","matches":[{"start":1,"end":3,"text":"12"}]}
func (p *printer) jsonLine(lineNo int, line []byte, locs [][]int) {
	a := &p.arena
	matches := a.NewArray()
	for i, loc := range locs {
		m := a.NewObject()
		m.Set("start", a.NewNumberInt(loc[0]))
		m.Set("end", a.NewNumberInt(loc[1]))
		m.Set("text", a.NewStringBytes(line[loc[0]:loc[1]]))
		matches.SetArrayItem(i, m)
	}

	obj := a.NewObject()
	obj.Set("path", a.NewString(p.name))
	obj.Set("line", a.NewNumberInt(lineNo))
	obj.Set("text", a.NewStringBytes(line))
	obj.Set("matches", matches)
	p.writeJSON(obj)
}

func (p *printer) writeJSON(v *fastjson.Value) {
	p.scratch = v.MarshalTo(p.scratch[:0])
	p.buf.Write(p.scratch)
	p.buf.WriteByte('\n')
	p.arena.Reset()
}
