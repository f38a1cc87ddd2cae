package display

import (
	"fmt"
	"os"

	"github.com/danielnachumdev/media-compressor/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if logging.Cyan != "" {
		fmt.Fprint(os.Stdout, logging.Cyan)
	}
	fmt.Fprint(os.Stdout, ` __  __   ____
|  \/  | / ___|  mediacompress
| |\/| || |      batch video/image compression
| |  | || |___   over ffmpeg
|_|  |_| \____|
`)
	if logging.Cyan != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
