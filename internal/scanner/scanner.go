// Package scanner walks an image from start to end and produces the sequence
// of decoded instructions with prefixes folded in and branch destinations marked.
package scanner

import (
	"github.com/retroenv/disasm86/internal/decoder"
	"github.com/retroenv/disasm86/internal/instruction"
	"github.com/retroenv/disasm86/internal/symbols"
)

// Count returns the number of instructions in the image, prefixes are not
// counted separately.
func Count(image []byte) (int, error) {
	var count int
	err := walk(image, func(instruction.Record) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Scan decodes the whole image. Prefixes are folded into the instruction that
// follows them and every instruction that is the destination of a branch
// has its label flag set. Any undecodable byte fails the whole scan.
func Scan(image []byte) ([]instruction.Record, error) {
	var records []instruction.Record
	labels := symbols.New()

	err := walk(image, func(rec instruction.Record) {
		if target, ok := rec.Target(); ok && target >= 0 && target < len(image) {
			labels.Add(target)
		}
		records = append(records, rec)
	})
	if err != nil {
		return nil, err
	}

	markLabels(records, labels)
	return records, nil
}

// Labels returns the set of label offsets of scanned records.
func Labels(records []instruction.Record) *symbols.Labels {
	labels := symbols.New()
	for _, rec := range records {
		if rec.Flags.Label {
			labels.Add(rec.Start())
		}
	}
	return labels
}

func walk(image []byte, handle func(instruction.Record)) error {
	if len(image) == 0 {
		_, err := decoder.Decode(image, 0)
		return err
	}

	var pending instruction.Prefixes
	pendingStart := 0

	for offset := 0; offset < len(image); {
		rec, err := decoder.Decode(image, offset)
		if err != nil {
			return err
		}
		if rec.Kind == instruction.Unknown {
			return &decoder.DecodeError{
				Offset: offset,
				Opcode: image[offset],
				Err:    decoder.ErrUnknownOpcode,
			}
		}
		offset = rec.Next()

		if rec.Kind.IsPrefix() {
			if pending.Count == 0 {
				pendingStart = rec.Offset
			}
			foldPrefix(&pending, rec)
			continue
		}

		if pending.Count > 0 {
			applyPrefixes(&rec, pending)
			rec.Bytes = image[pendingStart:rec.Next()]
			pending = instruction.Prefixes{}
		}
		handle(rec)
	}

	if pending.Count > 0 {
		return &decoder.DecodeError{
			Offset: pendingStart,
			Opcode: image[pendingStart],
			Err:    decoder.ErrOutOfBounds,
		}
	}
	return nil
}

func foldPrefix(pending *instruction.Prefixes, rec instruction.Record) {
	switch rec.Kind {
	case instruction.Lock:
		pending.Lock = true
	case instruction.Rep:
		pending.Rep = true
		pending.RepNE = false
	case instruction.Repne:
		pending.RepNE = true
		pending.Rep = false
	case instruction.SegmentOverride:
		pending.Override = true
		pending.Segment = rec.Fields.SR
	}
	pending.Count++
}

// applyPrefixes merges the pending prefix bytes into the prefixes implied by the encoding.
func applyPrefixes(rec *instruction.Record, pending instruction.Prefixes) {
	rec.Prefixes.Lock = pending.Lock
	rec.Prefixes.Rep = pending.Rep
	rec.Prefixes.RepNE = pending.RepNE
	rec.Prefixes.Override = pending.Override
	rec.Prefixes.Segment = pending.Segment
	rec.Prefixes.Count = pending.Count
}

// markLabels is the second pass, it flags the instructions that start at a
// branch destination and the branches whose destination got a label.
func markLabels(records []instruction.Record, labels *symbols.Labels) {
	for i := range records {
		if labels.Contains(records[i].Start()) {
			records[i].Flags.Label = true
		}
	}

	defined := Labels(records)
	for i := range records {
		if target, ok := records[i].Target(); ok && defined.Contains(target) {
			records[i].Flags.TargetLabel = true
		}
	}
}
