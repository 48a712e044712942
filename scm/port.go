/*
Copyright (C) 2026 The goschemecore Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"bufio"
	"io"
	"os"

	"github.com/google/uuid"
)

// Port wraps an open file handle (spec §3.1 Port variant). Every Port
// carries a UUID identity, the same way storage/fast_uuid.go tags
// every transaction/partition with one, so the open-port registry walked
// by the shutdown hook (main.go) can key a specific open port without
// pinning it to a file descriptor number that may get reused. The UUID
// does not appear in the port's printed form or in error messages.
type Port struct {
	ID     uuid.UUID
	Name   string
	file   *os.File
	reader *bufio.Reader
	writer *bufio.Writer
	input  bool
}

func openInputPort(path string) (*Port, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Port{ID: uuid.New(), Name: path, file: f, reader: bufio.NewReader(f), input: true}, nil
}

func openOutputPort(path string) (*Port, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Port{ID: uuid.New(), Name: path, file: f, writer: bufio.NewWriter(f), input: false}, nil
}

// ReadLine reads one line from an input Port, per `read`'s contract.
func (p *Port) ReadLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return line, nil
}

// ReadAll reads every remaining byte from an input Port, per
// `read-contents`'s contract.
func (p *Port) ReadAll() (string, error) {
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteString writes to an output Port, per `write`'s contract.
func (p *Port) WriteString(s string) error {
	_, err := p.writer.WriteString(s)
	if err != nil {
		return err
	}
	return p.writer.Flush()
}

// Close closes the underlying file. Safe to call more than once.
func (p *Port) Close() error {
	if p.writer != nil {
		p.writer.Flush()
	}
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}

// openPorts is the process-wide registry the onexit shutdown hook
// (cmd/lisp/main.go) walks to flush and close everything still open,
// grounded on storage/settings.go's onexit.Register usage.
var openPorts = map[uuid.UUID]*Port{}

func registerPort(p *Port) {
	openPorts[p.ID] = p
}

func unregisterPort(p *Port) {
	delete(openPorts, p.ID)
}

// CloseAllPorts closes every Port opened and not yet closed. Called from
// the onexit hook registered in cmd/lisp/main.go.
func CloseAllPorts() {
	for _, p := range openPorts {
		p.Close()
	}
}
