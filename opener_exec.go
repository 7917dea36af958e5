//go:build !windows

package launcher

import (
	"fmt"
	"os/exec"
)

// commandOpener runs the named helper with the path as its only argument.
type commandOpener string

func (c commandOpener) Open(path string) error {
	bin, err := exec.LookPath(string(c))
	if err != nil {
		return fmt.Errorf("no default handler: %w", err)
	}
	if out, err := exec.Command(bin, path).CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w\n%s", c, err, out)
	}
	return nil
}
