package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tealeg/xlsx/v3"
)

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(sampleAnalytics())

	for _, want := range []string{
		"# TechCorp  Industries",
		"Reporting Period: 2025-07-01 to 2025-09-30",
		"Program investment of $180,000 generated $1,290,000 in estimated savings",
		"## Key Performance Indicators",
		"| Clinically Improved | 53.1% | 170 employees |",
		"### PHQ-9 Baseline Severity",
		"### PHQ-9 Current Severity",
		"### Annual Productivity Savings",
		"## Methodology & Disclaimer",
		"cohorts of 5 or more employees",
		"aggregated and anonymized",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(sampleAnalytics())
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	if !bytes.HasPrefix(out, []byte("<!DOCTYPE html>")) {
		t.Error("expected html doctype")
	}
	for _, want := range []string{"<table>", "<h2>Clinical Outcomes</h2>", "<title>TechCorp  Industries Wellness Report</title>"} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestRenderHTML_EscapesTitle(t *testing.T) {
	a := sampleAnalytics()
	a.Organization.Name = "<Acme & Co>"

	out, err := RenderHTML(a)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !bytes.Contains(out, []byte("<title>&lt;Acme &amp; Co&gt; Wellness Report</title>")) {
		t.Error("expected escaped organization name in title")
	}
}

func TestWorkbook(t *testing.T) {
	file, err := Workbook(sampleAnalytics())
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	want := []string{SheetSummary, SheetClinical, SheetProductivity, SheetTimeSeries}
	if len(file.Sheets) != len(want) {
		t.Fatalf("expected %d sheets, got %d", len(want), len(file.Sheets))
	}
	for i, name := range want {
		if file.Sheets[i].Name != name {
			t.Errorf("sheet %d = %q, want %q", i, file.Sheets[i].Name, name)
		}
	}

	output, err := file.ToSlice()
	if err != nil {
		t.Fatalf("ToSlice() error = %v", err)
	}

	summary := output[0]
	if summary[0][0] != "TechCorp  Industries" {
		t.Errorf("summary title = %q", summary[0][0])
	}

	series := output[3]
	if len(series) != 3 {
		t.Fatalf("expected header plus 2 weeks, got %d rows", len(series))
	}
	if series[1][1] != "2025-07-08" || series[2][5] != "318" {
		t.Errorf("unexpected time series rows: %v", series[1:])
	}

	roi := output[2]
	last := roi[len(roi)-1]
	if last[0] != "Payback Period" || last[1] != "2 months" {
		t.Errorf("unexpected final roi row: %v", last)
	}
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(sampleAnalytics())
	if err != nil {
		t.Fatalf("RenderXLSX() error = %v", err)
	}

	file, err := xlsx.OpenBinary(data)
	if err != nil {
		t.Fatalf("OpenBinary() error = %v", err)
	}
	if _, ok := file.Sheet[SheetProductivity]; !ok {
		t.Error("expected productivity sheet in written workbook")
	}
}
