package snapshot

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Load reads and validates a snapshot file.
func Load(path string) (*Unit, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", path, err)
	}
	return Decode(data)
}

// Decode unmarshals a snapshot payload.
func Decode(data []byte) (*Unit, error) {
	var u Unit
	if err := msgpack.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if u.Schema != SchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d not supported (want %d)", u.Schema, SchemaVersion)
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// Save writes a snapshot file atomically (write to temp, then rename).
func Save(path string, u *Unit) error {
	data, err := Encode(u)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to finalize snapshot %q: %w", path, err)
	}
	return nil
}

// Encode marshals a snapshot payload, stamping the schema version.
func Encode(u *Unit) ([]byte, error) {
	u.Schema = SchemaVersion
	data, err := msgpack.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func (u *Unit) validate() error {
	nDecls := uint32(len(u.Decls))
	nFiles := uint32(len(u.Files))
	for i := range u.Decls {
		d := &u.Decls[i]
		if d.File > nFiles || d.Expansion > nFiles {
			return fmt.Errorf("decl %q references file out of range", d.Name)
		}
		for _, c := range d.Callees {
			if c == 0 || c > nDecls {
				return fmt.Errorf("decl %q references callee %d out of range", d.Name, c)
			}
		}
		for _, run := range []*EngineRun{d.Plain, d.GC} {
			if run == nil {
				continue
			}
			for _, c := range run.Inlined {
				if c == 0 || c > nDecls {
					return fmt.Errorf("decl %q inlines callee %d out of range", d.Name, c)
				}
			}
		}
	}
	return nil
}
