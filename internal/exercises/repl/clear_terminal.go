package repl

import (
	"os"
	"os/exec"
	"runtime"
)

// clearTerminal clears the terminal screen in supported operating systems.
func clearTerminal() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "cls")
	case "linux", "darwin", "freebsd":
		cmd = exec.Command("clear")
	default:
		return
	}

	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}
