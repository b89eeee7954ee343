package realtime

import (
	"bytes"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

const wsGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

const (
	opText  = 0x1
	opClose = 0x8
	opPing  = 0x9
	opPong  = 0xA
)

// Conn is a minimal WebSocket connection supporting unfragmented text
// frames, enough for the board relay. No compression, no extensions.
type Conn struct {
	conn net.Conn
}

// Upgrade hijacks the HTTP connection and completes the RFC 6455
// opening handshake.
func Upgrade(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	key := r.Header.Get("Sec-WebSocket-Key")
	if key == "" {
		return nil, errors.New("missing websocket key")
	}
	hj, ok := w.(http.Hijacker)
	if !ok {
		return nil, errors.New("connection does not support hijacking")
	}
	rawConn, buf, err := hj.Hijack()
	if err != nil {
		return nil, err
	}

	h := sha1.New()
	h.Write([]byte(key + wsGUID))
	accept := base64.StdEncoding.EncodeToString(h.Sum(nil))

	if _, err := fmt.Fprintf(buf, "HTTP/1.1 101 Switching Protocols\r\nUpgrade: websocket\r\nConnection: Upgrade\r\nSec-WebSocket-Accept: %s\r\n\r\n", accept); err != nil {
		rawConn.Close()
		return nil, err
	}
	if err := buf.Flush(); err != nil {
		rawConn.Close()
		return nil, err
	}
	return &Conn{conn: rawConn}, nil
}

// NewConn wraps an already-established connection. Used by tests and
// anywhere a handshake has happened elsewhere.
func NewConn(c net.Conn) *Conn {
	return &Conn{conn: c}
}

func (c *Conn) ReadJSON(v interface{}) error {
	payload, err := c.readText()
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, v)
}

func (c *Conn) WriteJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.writeFrame(opText, data)
}

func (c *Conn) Close() error {
	_ = c.writeFrame(opClose, nil)
	return c.conn.Close()
}

// readText consumes frames until a text frame arrives, answering pings
// and treating close as EOF.
func (c *Conn) readText() ([]byte, error) {
	for {
		header := make([]byte, 2)
		if _, err := io.ReadFull(c.conn, header); err != nil {
			return nil, err
		}
		fin := header[0]&0x80 != 0
		opcode := header[0] & 0x0F
		masked := header[1]&0x80 != 0
		length := int(header[1] & 0x7F)

		switch length {
		case 126:
			ext := make([]byte, 2)
			if _, err := io.ReadFull(c.conn, ext); err != nil {
				return nil, err
			}
			length = int(binary.BigEndian.Uint16(ext))
		case 127:
			ext := make([]byte, 8)
			if _, err := io.ReadFull(c.conn, ext); err != nil {
				return nil, err
			}
			length = int(binary.BigEndian.Uint64(ext))
		}

		var maskKey [4]byte
		if masked {
			if _, err := io.ReadFull(c.conn, maskKey[:]); err != nil {
				return nil, err
			}
		}

		payload := make([]byte, length)
		if _, err := io.ReadFull(c.conn, payload); err != nil {
			return nil, err
		}
		if masked {
			for i := range payload {
				payload[i] ^= maskKey[i%4]
			}
		}

		switch opcode {
		case opClose:
			return nil, io.EOF
		case opPing:
			_ = c.writeFrame(opPong, payload)
			continue
		case opText:
			if !fin {
				return nil, errors.New("fragmented frames are not supported")
			}
			return payload, nil
		default:
			return nil, errors.New("unsupported websocket opcode")
		}
	}
}

func (c *Conn) writeFrame(opcode byte, payload []byte) error {
	var buf bytes.Buffer
	buf.WriteByte(0x80 | opcode)

	length := len(payload)
	switch {
	case length < 126:
		buf.WriteByte(byte(length))
	case length <= 0xFFFF:
		buf.WriteByte(126)
		var ext [2]byte
		binary.BigEndian.PutUint16(ext[:], uint16(length))
		buf.Write(ext[:])
	default:
		buf.WriteByte(127)
		var ext [8]byte
		binary.BigEndian.PutUint64(ext[:], uint64(length))
		buf.Write(ext[:])
	}
	buf.Write(payload)

	_, err := c.conn.Write(buf.Bytes())
	return err
}
