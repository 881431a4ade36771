package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
)

// document is one yaml or json document of an input.
type document struct {
	src  string
	raw  []byte
	data any
}

func readFiles(files []string, in io.Reader) ([]document, error) {
	if len(files) == 0 {
		return readDocs("-", in)
	}
	var res []document
	for _, file := range files {
		docs, err := readFile(file, in)
		if err != nil {
			return nil, err
		}
		res = append(res, docs...)
	}
	return res, nil
}

func readFile(file string, in io.Reader) ([]document, error) {
	if file == "-" {
		return readDocs(file, in)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	docs, err := readDocs(file, f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return docs, nil
}

// readDocs splits r into documents on "---" lines and decodes each with
// mapping keys in document order. Blank documents are skipped.
func readDocs(src string, r io.Reader) ([]document, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	in = bytes.TrimPrefix(in, []byte("---\n"))
	var res []document
	for i, raw := range bytes.Split(in, []byte("\n---\n")) {
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		doc := document{src: src, raw: raw}
		if err := yaml.UnmarshalWithOptions(raw, &doc.data, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, doc)
	}
	return res, nil
}

func readPatch(file string) (jsonpatch.Patch, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", file, err)
	}
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %q: %w", file, err)
	}
	ops, err := jsonpatch.DecodePatch(j)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %q: %w", file, err)
	}
	return ops, nil
}

// patchDocs applies the patch in file to every document. An empty file
// name leaves docs alone.
func patchDocs(file string, docs []document) error {
	if file == "" {
		return nil
	}
	ops, err := readPatch(file)
	if err != nil {
		return err
	}
	for i := range docs {
		docs[i], err = docs[i].patch(ops)
		if err != nil {
			return fmt.Errorf("error patching document %d of %s: %w", i, docs[i].src, err)
		}
	}
	return nil
}

// patch applies ops to doc. The patched document is json, so mapping keys
// come back in the order the patch library writes them.
func (doc document) patch(ops jsonpatch.Patch) (document, error) {
	j, err := yaml.YAMLToJSON(doc.raw)
	if err != nil {
		return doc, err
	}
	out, err := ops.Apply(j)
	if err != nil {
		return doc, err
	}
	res := document{src: doc.src, raw: out}
	if err := yaml.UnmarshalWithOptions(out, &res.data, yaml.UseOrderedMap()); err != nil {
		return doc, err
	}
	return res, nil
}

// eval runs code with the document bound to doc, as plain maps and slices.
func (doc document) eval(code string) (any, error) {
	var plain any
	if err := yaml.Unmarshal(doc.raw, &plain); err != nil {
		return nil, err
	}
	env := map[string]any{"doc": plain}
	prg, err := expr.Compile(code, expr.Env(env))
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}
