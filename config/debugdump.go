package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// DiskOverridesDump captures the disk-selection and filter overrides a
// --debug plan run was invoked with, so a session can be replayed or
// inspected later without re-deriving it from shell history.
type DiskOverridesDump struct {
	Src         []string `json:"src"`
	Dest        []string `json:"dest"`
	MinSpace    string   `json:"minSpace"`
	MinFileSize string   `json:"minFileSize"`
	PathFilter  []string `json:"pathFilter"`
	Exclude     []string `json:"exclude"`
}

// WriteDebugDump renders dump as commented JSON (hujson) and writes it
// to path, next to the generated plan script. hujson.Standardize is
// used to validate the rendered text round-trips to plain JSON before
// it ever reaches disk, catching a broken template early rather than
// shipping an unparsable sidecar.
func WriteDebugDump(path string, dump DiskOverridesDump) error {
	text, err := renderHujson(dump)
	if err != nil {
		return fmt.Errorf("rendering debug dump: %w", err)
	}
	if _, err := hujson.Standardize([]byte(text)); err != nil {
		return fmt.Errorf("debug dump failed self-validation: %w", err)
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// ReadDebugDump reads back a sidecar written by WriteDebugDump,
// tolerating hand edits (comments, trailing commas) via
// hujson.Standardize before unmarshaling.
func ReadDebugDump(path string) (DiskOverridesDump, error) {
	var dump DiskOverridesDump
	raw, err := os.ReadFile(path)
	if err != nil {
		return dump, err
	}
	plain, err := hujson.Standardize(raw)
	if err != nil {
		return dump, fmt.Errorf("parsing debug dump %s: %w", path, err)
	}
	if err := json.Unmarshal(plain, &dump); err != nil {
		return dump, fmt.Errorf("decoding debug dump %s: %w", path, err)
	}
	return dump, nil
}

func renderHujson(d DiskOverridesDump) (string, error) {
	field := func(name string, v interface{}) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("  %q: %s", name, b), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	buf.WriteString("  // source disks the plan restricted itself to; empty means auto-pick\n")
	if s, err := field("src", d.Src); err != nil {
		return "", err
	} else {
		buf.WriteString(s + ",\n")
	}
	buf.WriteString("  // destination disks considered\n")
	if s, err := field("dest", d.Dest); err != nil {
		return "", err
	} else {
		buf.WriteString(s + ",\n")
	}
	buf.WriteString("  // minimum free space reserved per destination disk\n")
	if s, err := field("minSpace", d.MinSpace); err != nil {
		return "", err
	} else {
		buf.WriteString(s + ",\n")
	}
	buf.WriteString("  // minimum file size eligible to move\n")
	if s, err := field("minFileSize", d.MinFileSize); err != nil {
		return "", err
	} else {
		buf.WriteString(s + ",\n")
	}
	buf.WriteString("  // path prefixes files must match to be eligible\n")
	if s, err := field("pathFilter", d.PathFilter); err != nil {
		return "", err
	} else {
		buf.WriteString(s + ",\n")
	}
	buf.WriteString("  // substrings used to exclude files during scan\n")
	if s, err := field("exclude", d.Exclude); err != nil {
		return "", err
	} else {
		buf.WriteString(s + ",\n")
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}
