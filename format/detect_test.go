package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"list.json", StextJSON},
		{"list.stext", StextJSON},
		{"LIST.JSON", StextJSON},
		{"list.html", HTML},
		{"list.htm", HTML},
		{"list.pdf", PDF},
		{"list.txt", Unknown},
		{"list", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n"), PDF},
		{"json object", []byte(`{"pages": []}`), StextJSON},
		{"json with leading space", []byte("\n\t {\"pages\": []}"), StextJSON},
		{"json array", []byte(`[{"width": 612}]`), StextJSON},
		{"doctype html", []byte("<!DOCTYPE html>\n<html>"), HTML},
		{"html tag", []byte("  <html lang=\"en\">"), HTML},
		{"xhtml", []byte(`<?xml version="1.0"?><html>`), HTML},
		{"plain text", []byte("COURT NO. 2"), Unknown},
		{"empty", nil, Unknown},
		{"whitespace only", []byte("   \n"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{StextJSON, "StextJSON"},
		{HTML, "HTML"},
		{PDF, "PDF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{StextJSON, ".json"},
		{HTML, ".html"},
		{PDF, ".pdf"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
