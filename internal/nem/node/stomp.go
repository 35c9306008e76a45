package node

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// STOMP 1.1 frames as exchanged with the NIS websocket endpoint.

const (
	cmdConnect     = "CONNECT"
	cmdConnected   = "CONNECTED"
	cmdSubscribe   = "SUBSCRIBE"
	cmdUnsubscribe = "UNSUBSCRIBE"
	cmdDisconnect  = "DISCONNECT"
	cmdMessage     = "MESSAGE"
	cmdError       = "ERROR"
)

var errEmptyFrame = errors.New("empty stomp frame")

type frame struct {
	command string
	headers map[string]string
	body    []byte
}

var headerEscaper = strings.NewReplacer("\\", "\\\\", "\n", "\\n", ":", "\\c", "\r", "\\r")

func (f frame) encode() []byte {
	var b bytes.Buffer
	b.WriteString(f.command)
	b.WriteByte('\n')
	for k, v := range f.headers {
		if f.command != cmdConnect {
			k, v = headerEscaper.Replace(k), headerEscaper.Replace(v)
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(v)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.Write(f.body)
	b.WriteByte(0)
	return b.Bytes()
}

// decodeFrame parses one frame. Heart-beats (bare EOLs) yield errEmptyFrame.
func decodeFrame(data []byte) (frame, error) {
	data = bytes.TrimLeft(data, "\r\n")
	if len(data) == 0 {
		return frame{}, errEmptyFrame
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	head, body, found := bytes.Cut(data, []byte("\n\n"))
	if !found {
		head, body, found = bytes.Cut(data, []byte("\r\n\r\n"))
	}
	if !found {
		return frame{}, fmt.Errorf("stomp frame without header terminator: %q", truncate(data))
	}

	lines := strings.Split(strings.ReplaceAll(string(head), "\r\n", "\n"), "\n")
	f := frame{command: lines[0], headers: make(map[string]string, len(lines)-1), body: body}
	for _, line := range lines[1:] {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			return frame{}, fmt.Errorf("stomp header without colon: %q", line)
		}
		k, v = unescapeHeader(k), unescapeHeader(v)
		// the first occurrence of a repeated header wins
		if _, dup := f.headers[k]; !dup {
			f.headers[k] = v
		}
	}
	return f, nil
}

func unescapeHeader(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'c':
			b.WriteByte(':')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func truncate(data []byte) []byte {
	if len(data) > 64 {
		return data[:64]
	}
	return data
}
