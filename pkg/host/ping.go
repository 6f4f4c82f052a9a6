// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package host

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
)

const (
	// DefaultPort is the Minecraft server port used when an address has none.
	DefaultPort = 25565

	// maxPacketLength caps a status response (the protocol limit is 2^21-1).
	maxPacketLength = 1<<21 - 1

	packetHandshake = 0x00
	packetStatus    = 0x00
	nextStateStatus = 1

	// protocolUnknown asks the server to answer with its own protocol.
	protocolUnknown = -1
)

var (
	errVarIntTooLong = errors.New("varint is too long")
	errPacketTooLong = errors.New("packet exceeds maximum length")
)

// Status is the server list ping response.
type Status struct {
	Version struct {
		Name     string `json:"name" yaml:"name"`
		Protocol int    `json:"protocol" yaml:"protocol"`
	} `json:"version" yaml:"version"`
	Players struct {
		Max    int `json:"max" yaml:"max"`
		Online int `json:"online" yaml:"online"`
	} `json:"players" yaml:"players"`
}

type pingSource struct {
	address string
	timeout time.Duration
}

func (p *pingSource) String() string { return "ping://" + p.address }

func (p *pingSource) ReportedVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	st, err := QueryStatus(ctx, p.address)
	if err != nil {
		return "", err
	}

	slog.Debug("server list ping answered", "address", p.address,
		"version", st.Version.Name, "protocol", st.Version.Protocol)
	return extractOrRaw(st.Version.Name), nil
}

// Ping returns a Host that asks a running server for its version with a
// server list ping. A timeout <= 0 uses defaults.PingTimeout. A server
// that cannot be reached is unavailable.
func Ping(address string, timeout time.Duration) Host {
	if timeout <= 0 {
		timeout = defaults.PingTimeout
	}
	return &pingSource{address: address, timeout: timeout}
}

// QueryStatus performs a server list ping against address ("host" or
// "host:port") and returns the decoded status. Dial failures wrap
// ErrUnavailable.
func QueryStatus(ctx context.Context, address string) (*Status, error) {
	hostname, port, err := splitAddress(address)
	if err != nil {
		return nil, err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(hostname, strconv.Itoa(int(port))))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set ping deadline: %w", err)
		}
	}

	var hs bytes.Buffer
	writeVarInt(&hs, packetHandshake)
	writeVarInt(&hs, protocolUnknown)
	writeString(&hs, hostname)
	_ = binary.Write(&hs, binary.BigEndian, port)
	writeVarInt(&hs, nextStateStatus)

	if err := writePacket(conn, hs.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to send handshake: %w", err)
	}
	if err := writePacket(conn, []byte{packetStatus}); err != nil {
		return nil, fmt.Errorf("failed to send status request: %w", err)
	}

	payload, err := readPacket(bufio.NewReader(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %w", err)
	}

	br := bytes.NewReader(payload)
	id, err := readVarInt(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read packet id: %w", err)
	}
	if id != packetStatus {
		return nil, fmt.Errorf("unexpected packet id 0x%02x in status response", id)
	}
	body, err := readString(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read status body: %w", err)
	}

	var st Status
	if err := json.Unmarshal([]byte(body), &st); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}
	return &st, nil
}

func splitAddress(address string) (string, uint16, error) {
	hostname, portStr, err := net.SplitHostPort(address)
	if err != nil {
		// no port given
		if address == "" {
			return "", 0, fmt.Errorf("empty server address")
		}
		if strings.HasPrefix(address, "[") {
			// bracketed IPv6 literal without a port
			if !strings.HasSuffix(address, "]") || len(address) == 2 {
				return "", 0, fmt.Errorf("invalid server address %q", address)
			}
			return address[1 : len(address)-1], DefaultPort, nil
		}
		return address, DefaultPort, nil
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q: %w", address, err)
	}
	return hostname, uint16(port), nil
}

func writeVarInt(w *bytes.Buffer, value int32) {
	ux := uint32(value)
	for {
		if ux&^0x7F == 0 {
			w.WriteByte(byte(ux))
			return
		}
		w.WriteByte(byte(ux&0x7F | 0x80))
		ux >>= 7
	}
}

func readVarInt(r io.ByteReader) (int32, error) {
	var ux uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		ux |= uint32(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return int32(ux), nil
		}
	}
	return 0, errVarIntTooLong
}

func writeString(w *bytes.Buffer, s string) {
	writeVarInt(w, int32(len(s)))
	w.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	n, err := readVarInt(r)
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > r.Len() {
		return "", fmt.Errorf("string length %d out of range", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writePacket(w io.Writer, payload []byte) error {
	var frame bytes.Buffer
	writeVarInt(&frame, int32(len(payload)))
	frame.Write(payload)
	_, err := w.Write(frame.Bytes())
	return err
}

func readPacket(r *bufio.Reader) ([]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > maxPacketLength {
		return nil, errPacketTooLong
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
