package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sofmeright/badgemaker/src/identity"
	"github.com/sofmeright/badgemaker/src/style"
)

// Oracle renders a case with a reference implementation.
type Oracle interface {
	Render(ctx context.Context, c Case) (string, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, c Case) (string, error)

// Render calls f.
func (f OracleFunc) Render(ctx context.Context, c Case) (string, error) { return f(ctx, c) }

// NodeOracle runs the reference badge CLI as a subprocess:
//
//	<command...> label message color labelColor @style
//
// and reads the markup from stdout.
type NodeOracle struct {
	Command []string // e.g. ["node", "badge-cli.js"]
	Dir     string   // working directory
}

// Render invokes the reference CLI for one case.
func (o *NodeOracle) Render(ctx context.Context, c Case) (string, error) {
	if len(o.Command) == 0 {
		return "", errors.New("oracle command not configured")
	}
	v, err := style.Parse(c.Style)
	if err != nil {
		return "", err
	}

	args := append([]string{}, o.Command[1:]...)
	args = append(args, c.Label, c.Message, c.Color, c.LabelColor, "@"+v.String())

	cmd := exec.CommandContext(ctx, o.Command[0], args...)
	cmd.Dir = o.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("running %s: %w: %s", o.Command[0], err, msg)
		}
		return "", fmt.Errorf("running %s: %w", o.Command[0], err)
	}
	return string(out), nil
}

// Clean rewrites the reference renderer's unscoped element ids to the
// badge-scoped form and strips newlines, so output can be compared
// byte-for-byte with the local engine.
func Clean(svg string, id identity.ID) string {
	gradient, clip := id.GradientID(), id.ClipID()
	r := strings.NewReplacer(
		`id="s"`, `id="`+gradient+`"`,
		`id="r"`, `id="`+clip+`"`,
		`fill="url(#s)"`, `fill="url(#`+gradient+`)"`,
		`clip-path="url(#r)"`, `clip-path="url(#`+clip+`)"`,
		"\n", "",
	)
	return r.Replace(svg)
}
