package region

import (
	"encoding/binary"
	"fmt"
)

// Binary layout: 4-byte magic, uint32 LE width, uint32 LE height, then every word as uint64 LE
// in storage order.
const (
	encodingMagic  = "BRG1"
	encodingHeader = 12
)

// MarshalBinary encodes the region into the layout above.
func (r *Region) MarshalBinary() ([]byte, error) {
	buf := make([]byte, encodingHeader+len(r.data)*8)
	copy(buf, encodingMagic)
	binary.LittleEndian.PutUint32(buf[4:], uint32(r.width))
	binary.LittleEndian.PutUint32(buf[8:], uint32(r.height))
	for i, w := range r.data {
		binary.LittleEndian.PutUint64(buf[encodingHeader+i*8:], w)
	}
	return buf, nil
}

// UnmarshalBinary replaces r with the region encoded in data.
func (r *Region) UnmarshalBinary(data []byte) error {
	if len(data) < encodingHeader || string(data[:4]) != encodingMagic {
		return fmt.Errorf("decode region: bad header: %w", ErrInvalidArgument)
	}
	width := int(binary.LittleEndian.Uint32(data[4:]))
	height := int(binary.LittleEndian.Uint32(data[8:]))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("decode region %dx%d: %w", width, height, ErrInvalidArgument)
	}
	// Size the payload from the header before allocating anything.
	words := (len(data) - encodingHeader) / 8
	ys := sections(height)
	if ys > words || words%ys != 0 || width != words/ys || len(data) != encodingHeader+words*8 {
		return fmt.Errorf("decode region %dx%d: %d bytes do not match the header: %w",
			width, height, len(data), ErrInvalidArgument)
	}
	dec, err := New(width, height)
	if err != nil {
		return fmt.Errorf("decode region: %w", err)
	}
	last := dec.ySections - 1
	for i := range dec.data {
		w := binary.LittleEndian.Uint64(data[encodingHeader+i*8:])
		if i%dec.ySections == last && w&^dec.yEndMask != 0 {
			return fmt.Errorf("decode region: bits set past height in column %d: %w", i/dec.ySections, ErrInvalidArgument)
		}
		dec.data[i] = w
	}
	*r = *dec
	return nil
}
