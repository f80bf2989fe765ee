package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseMask reads a text maze, top row first. '.' and 'X' are walkable, 'W' and
// 'I' are walls. Blank lines and lines starting with '#' are skipped. All rows
// must have the same width.
func ParseMask(r io.Reader) (mask []bool, width, height int, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if width == 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, 0, 0, fmt.Errorf("line %d: expected %d cells, got %d", lineNo, width, len(line))
		}

		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '.', 'X':
				mask = append(mask, true)
			case 'W', 'I':
				mask = append(mask, false)
			default:
				return nil, 0, 0, fmt.Errorf("line %d: unknown cell %q at column %d", lineNo, line[i], i+1)
			}
		}
		height++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("error reading maze: %w", err)
	}
	if height == 0 {
		return nil, 0, 0, fmt.Errorf("maze contains no rows")
	}
	return mask, width, height, nil
}

// LoadGrid reads a text maze file and builds a grid from it.
func LoadGrid(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze file %s: %w", path, err)
	}
	defer file.Close()

	mask, width, height, err := ParseMask(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse maze file %s: %w", path, err)
	}
	return NewGrid(mask, width, height)
}
