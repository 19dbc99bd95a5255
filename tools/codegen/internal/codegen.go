// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codegen

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
)

// certExtensions lists the file extensions treated as bundled certificates.
var certExtensions = []string{".pem", ".crt", ".cer", ".der"}

// Options controls a registry generation run.
type Options struct {
	// Dir is the directory holding the bundled certificate files.
	Dir string
	// Output is the generated file path. Relative paths resolve against Dir.
	Output string
	// Package is the package clause of the generated file.
	Package string
}

// Entry is a single row of the generated registry table.
type Entry struct {
	ID   int
	Name string
}

var registryTemplate = template.Must(template.New("registry").Parse(`package {{.Package}}

import "github.com/H0llyW00dzZ/wallet-core/src/trust"

var registry = []trust.Resource{
{{- range .Entries}}
	{ID: {{.ID}}, Name: {{printf "%q" .Name}}},
{{- end}}
}
`))

// ScanCertificates lists the certificate files directly under dir in lexical order
// and assigns them IDs starting at 1.
func ScanCertificates(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading certificate directory %s: %w", dir, err)
	}

	var names []string
	for _, f := range files {
		if !f.Type().IsRegular() {
			continue
		}
		if slices.Contains(certExtensions, strings.ToLower(filepath.Ext(f.Name()))) {
			names = append(names, f.Name())
		}
	}
	slices.Sort(names)

	entries := make([]Entry, 0, len(names))
	for i, name := range names {
		entries = append(entries, Entry{ID: i + 1, Name: name})
	}
	return entries, nil
}

// RenderRegistry renders the gofmt-ed registry source for entries.
func RenderRegistry(pkg string, entries []Entry) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}

	var code bytes.Buffer
	writeHeader(&code)

	data := struct {
		Package string
		Entries []Entry
	}{pkg, entries}
	if err := registryTemplate.Execute(&code, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(code.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}
	return formatted, nil
}

// GenerateRegistry scans opts.Dir and writes the registry table to opts.Output.
func GenerateRegistry(opts Options) error {
	entries, err := ScanCertificates(opts.Dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no certificate files found in %s", opts.Dir)
	}

	content, err := RenderRegistry(opts.Package, entries)
	if err != nil {
		return err
	}

	output := opts.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(opts.Dir, output)
	}
	return writeGeneratedFile(output, content)
}

func writeHeader(code *bytes.Buffer) {
	code.WriteString("// Copyright (c) 2026 H0llyW00dzZ All rights reserved.\n")
	code.WriteString("//\n")
	code.WriteString("// By accessing or using this software, you agree to be bound by the terms\n")
	code.WriteString("// of the License Agreement, which you can find at LICENSE files.\n\n")
	code.WriteString("// Code generated by go generate; DO NOT EDIT.\n")
	code.WriteString("// This file is generated from tools/codegen/internal/codegen.go\n\n")
}

func writeGeneratedFile(filename string, content []byte) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	writer := bufio.NewWriter(file)
	if _, err := writer.Write(content); err != nil {
		file.Close()
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("flushing file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	fmt.Printf("Generated %s successfully\n", filename)
	return nil
}
