package source

import (
	"bufio"
	"fmt"
	"os"
)

// openText reads a plain text file line by line. Every line is a
// body-sized record; heading detection relies entirely on the casing,
// numbering and keyword rules.
func openText(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var w lineWriter
	for scanner.Scan() {
		w.addBody(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return w.document(), nil
}
