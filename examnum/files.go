package examnum

import (
	"bufio"
	"fmt"
	"os"
)

// ReadCodes reads existing codes from path, one per line. Lines are taken
// verbatim; no length or format validation is applied, since the distance
// check tolerates codes of any length.
func ReadCodes(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open existing codes file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var codes []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		codes = append(codes, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read existing codes file: %w", err)
	}

	return codes, nil
}
