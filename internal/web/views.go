package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"portfolio-cli/internal/content"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"
	"portfolio-cli/internal/session"
)

type pageOpts struct {
	flash   string
	isError bool
	form    *session.Form
	contact contactForm
}

type contactForm struct {
	Name    string
	Email   string
	Message string
}

type navVM struct {
	View   model.View
	Title  string
	Path   string
	Active bool
}

type formVM struct {
	Action  string
	Editing bool
	EditID  int
	Title   string
	Desc    string
	Tags    string
}

type pageVM struct {
	View       model.View
	Title      string
	Dark       bool
	Nav        []navVM
	Flash      string
	FlashError bool

	Profile model.Profile
	Stats   model.Stats

	Projects     []model.Project
	Featured     *model.Project
	ShowFeatured bool
	Form         formVM
	Contact      contactForm

	Visitors lineChart
	TagBars  barChart

	AboutHTML template.HTML
}

func buildPage(sess *session.Session, opts pageOpts) pageVM {
	v := sess.View()
	vm := pageVM{
		View:         v,
		Title:        v.Title(),
		Dark:         sess.Dark,
		Flash:        opts.flash,
		FlashError:   opts.isError,
		Profile:      content.Profile(),
		Stats:        content.Stats(),
		Projects:     sess.Projects.List(),
		ShowFeatured: sess.ShowFeatured,
		Contact:      opts.contact,
	}
	for _, nv := range model.Views() {
		vm.Nav = append(vm.Nav, navVM{View: nv, Title: nv.Title(), Path: viewPath(nv), Active: nv == v})
	}
	if f, ok := sess.Projects.Featured(); ok {
		vm.Featured = &f
	}

	vm.Form = formVM{Action: "/projects"}
	if sel, ok := sess.Projects.Selected(); ok {
		f := session.FormFor(sel)
		vm.Form = formVM{Action: fmt.Sprintf("/projects/%d", sel.ID), Editing: true, EditID: sel.ID, Title: f.Title, Desc: f.Desc, Tags: f.Tags}
	}
	if opts.form != nil {
		vm.Form.Title, vm.Form.Desc, vm.Form.Tags = opts.form.Title, opts.form.Desc, opts.form.Tags
	}

	switch v {
	case model.ViewDashboard:
		vm.Visitors = visitorsChart(content.Visitors())
		vm.TagBars = tagChart(sess.Projects.TagCounts())
	case model.ViewAbout:
		vm.AboutHTML = renderMarkdownHTML(content.AboutMarkdown(vm.Profile))
	}
	return vm
}

const (
	chartW   = 420.0
	chartH   = 180.0
	chartPad = 24.0
)

type chartPoint struct {
	X, Y  float64
	Label string
	Value int
}

type lineChart struct {
	Width, Height float64
	Points        []chartPoint
	Polyline      string
}

func visitorsChart(series []model.VisitorPoint) lineChart {
	c := lineChart{Width: chartW, Height: chartH}
	if len(series) == 0 {
		return c
	}
	maxV := 1
	for _, p := range series {
		if p.Visitors > maxV {
			maxV = p.Visitors
		}
	}
	step := 0.0
	if len(series) > 1 {
		step = (chartW - 2*chartPad) / float64(len(series)-1)
	}
	coords := make([]string, 0, len(series))
	for i, p := range series {
		x := chartPad + float64(i)*step
		y := chartH - chartPad - float64(p.Visitors)/float64(maxV)*(chartH-2*chartPad)
		c.Points = append(c.Points, chartPoint{X: x, Y: y, Label: p.Day, Value: p.Visitors})
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	c.Polyline = strings.Join(coords, " ")
	return c
}

type bar struct {
	X, Y, W, H float64
	LabelX     float64
	Label      string
	Value      int
}

type barChart struct {
	Width, Height float64
	Bars          []bar
}

func tagChart(counts []projects.TagCount) barChart {
	c := barChart{Width: chartW, Height: chartH}
	if len(counts) == 0 {
		return c
	}
	maxV := 1
	for _, tc := range counts {
		if tc.Count > maxV {
			maxV = tc.Count
		}
	}
	slot := (chartW - 2*chartPad) / float64(len(counts))
	w := slot * 0.6
	for i, tc := range counts {
		h := float64(tc.Count) / float64(maxV) * (chartH - 2*chartPad)
		x := chartPad + float64(i)*slot + (slot-w)/2
		c.Bars = append(c.Bars, bar{
			X: x, Y: chartH - chartPad - h, W: w, H: h,
			LabelX: x + w/2,
			Label:  tc.Name,
			Value:  tc.Count,
		})
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
