//go:build darwin

package launcher

func DefaultOpener() Opener {
	return commandOpener("open")
}
