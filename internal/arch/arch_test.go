// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"localign/internal/appcore", "localign/internal/app",
		"localign/internal/cli", "localign/internal/config", "localign/cmd/",
	}
	bans := map[string][]string{
		"localign/internal/engine": append([]string{
			"localign/internal/fasta", "localign/internal/pipeline",
			"localign/internal/writers", "localign/internal/output",
			"localign/internal/pretty", "localign/internal/store",
			"localign/internal/cmdutil",
		}, outer...),
		"localign/internal/fasta":    append([]string{"localign/internal/engine"}, outer...),
		"localign/internal/pipeline": append([]string{"localign/internal/writers", "localign/internal/store"}, outer...),
		"localign/internal/writers":  append([]string{"localign/internal/pipeline", "localign/internal/store"}, outer...),
		"localign/internal/output":   append([]string{"localign/internal/pipeline", "localign/internal/writers"}, outer...),
		"localign/internal/pretty":   append([]string{"localign/internal/pipeline", "localign/internal/writers"}, outer...),
		"localign/internal/store":    append([]string{"localign/internal/pipeline", "localign/internal/writers"}, outer...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "localign/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "localign/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
