// stream.go: -stream mode decodes a length-prefixed sequence of epee
// documents concurrently with the producer reading the next frame
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/agilira/epee/internal/decodequeue"
)

// streamFrame is one queued item: the raw bytes of a single epee
// document, framed on the wire by a 4-byte little-endian length prefix.
// This framing is epeedump's own convention for concatenating many
// records in one stream; the epee format itself only describes a
// single top-level document.
type streamFrame struct {
	data []byte
}

// ConvertStream decodes a length-prefixed stream of same-typed epee
// documents from input, emitting one JSON object per line to output.
// Decoding is pipelined through a decodequeue.Ring: the reader goroutine
// stays ahead reading the next frame's bytes while the ring's single
// consumer loop decodes and writes the previous one, so encode/decode
// never blocks on the next read() the way a flat loop would.
func (c *Converter) ConvertStream(input io.Reader, output io.Writer) error {
	rt, err := lookupRecordType(c.recordType)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	var firstErr error
	recordErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	ring, err := decodequeue.NewBuilder[streamFrame](1024).
		WithDecoder(func(frame *streamFrame) {
			rec, err := rt.fromEpee(frame.data)
			if err != nil {
				recordErr(fmt.Errorf("decode %s: %w", c.recordType, err))
				return
			}
			b, err := json.Marshal(rec)
			if err != nil {
				recordErr(err)
				return
			}
			mu.Lock()
			_, werr := output.Write(append(b, '\n'))
			mu.Unlock()
			if werr != nil {
				recordErr(werr)
			}
		}).
		WithBackpressurePolicy(decodequeue.BlockOnFull).
		WithIdleStrategy(decodequeue.NewSpinningIdleStrategy()).
		Build()
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		ring.Loop()
		close(done)
	}()

	reader := bufio.NewReader(input)
	var lenBuf [4]byte
	frames := 0
	for {
		if _, err := io.ReadFull(reader, lenBuf[:]); err != nil {
			if err == io.EOF {
				break
			}
			ring.Close()
			<-done
			return fmt.Errorf("reading frame length: %w", err)
		}
		n := binary.LittleEndian.Uint32(lenBuf[:])
		buf := make([]byte, n)
		if _, err := io.ReadFull(reader, buf); err != nil {
			ring.Close()
			<-done
			return fmt.Errorf("reading frame body: %w", err)
		}
		ring.Push(func(frame *streamFrame) { frame.data = buf })
		frames++
	}

	if err := ring.Flush(); err != nil {
		ring.Close()
		<-done
		return err
	}
	ring.Close()
	<-done

	mu.Lock()
	defer mu.Unlock()
	return firstErr
}
