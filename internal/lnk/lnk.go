// Package lnk reads and writes Windows shell link (.lnk) files.
//
// Only the subset of the Shell Link Binary File Format needed to point a
// shortcut at a local file is produced: the header, a LinkInfo structure with
// the local base path, and the StringData section. Shortcuts written by other
// tools are readable as long as they resolve to a local path; an ID list, if
// present, is skipped.
package lnk

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Ext is the shortcut file extension, without the dot.
const Ext = "lnk"

// ShowCommand is the window state the target is started with.
type ShowCommand uint32

// Show commands accepted by the shell.
const (
	ShowNormal      ShowCommand = 0x1
	ShowMaximized   ShowCommand = 0x3
	ShowMinNoActive ShowCommand = 0x7
)

// Link describes a shortcut.
type Link struct {
	Target       string
	WorkingDir   string
	Arguments    string
	Description  string
	IconLocation string
	ShowCommand  ShowCommand
}

// New returns a link to target with the normal show command.
func New(target string) *Link {
	return &Link{Target: target, ShowCommand: ShowNormal}
}

const (
	headerSize      = 0x4C
	linkInfoHdrSize = 0x24

	volumeIDAndLocalBasePath = 0x1
	driveFixed               = 0x3
	fileAttributeNormal      = 0x80
)

var linkCLSID = [16]byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// LinkFlags bits
const (
	hasLinkTargetIDList uint32 = 1 << iota
	hasLinkInfo
	hasName
	hasRelativePath
	hasWorkingDir
	hasArguments
	hasIconLocation
	isUnicode
)

type header struct {
	HeaderSize     uint32
	LinkCLSID      [16]byte
	LinkFlags      uint32
	FileAttributes uint32
	CreationTime   uint64
	AccessTime     uint64
	WriteTime      uint64
	FileSize       uint32
	IconIndex      int32
	ShowCommand    uint32
	HotKey         uint16
	Reserved1      uint16
	Reserved2      uint32
	Reserved3      uint32
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// MarshalBinary encodes the link in shell link format.
func (l *Link) MarshalBinary() ([]byte, error) {
	if l.Target == "" {
		return nil, fmt.Errorf("lnk: empty target")
	}
	show := l.ShowCommand
	if show == 0 {
		show = ShowNormal
	}

	flags := hasLinkInfo | isUnicode
	strs := []struct {
		flag  uint32
		value string
	}{
		{hasName, l.Description},
		{hasWorkingDir, l.WorkingDir},
		{hasArguments, l.Arguments},
		{hasIconLocation, l.IconLocation},
	}
	for _, s := range strs {
		if s.value != "" {
			flags |= s.flag
		}
	}

	var buf bytes.Buffer
	h := header{
		HeaderSize:     headerSize,
		LinkCLSID:      linkCLSID,
		LinkFlags:      flags,
		FileAttributes: fileAttributeNormal,
		ShowCommand:    uint32(show),
	}
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}

	info, err := marshalLinkInfo(l.Target)
	if err != nil {
		return nil, err
	}
	buf.Write(info)

	// StringData order is fixed by the format.
	for _, s := range strs {
		if s.value == "" {
			continue
		}
		if err := writeCountedString(&buf, s.value); err != nil {
			return nil, err
		}
	}

	// TerminalBlock
	buf.Write([]byte{0, 0, 0, 0})
	return buf.Bytes(), nil
}

func marshalLinkInfo(target string) ([]byte, error) {
	ansi, err := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).Bytes([]byte(target))
	if err != nil {
		return nil, fmt.Errorf("lnk: encode target: %w", err)
	}
	wide, err := utf16le.NewEncoder().Bytes([]byte(target))
	if err != nil {
		return nil, fmt.Errorf("lnk: encode target: %w", err)
	}

	var volumeID bytes.Buffer
	_ = binary.Write(&volumeID, binary.LittleEndian, []uint32{0x11, driveFixed, 0, 0x10})
	volumeID.WriteByte(0) // empty volume label

	volumeOffset := uint32(linkInfoHdrSize)
	localBaseOffset := volumeOffset + uint32(volumeID.Len())
	suffixOffset := localBaseOffset + uint32(len(ansi)) + 1
	localBaseUniOffset := suffixOffset + 1
	suffixUniOffset := localBaseUniOffset + uint32(len(wide)) + 2
	total := suffixUniOffset + 2

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, []uint32{
		total,
		linkInfoHdrSize,
		volumeIDAndLocalBasePath,
		volumeOffset,
		localBaseOffset,
		0, // CommonNetworkRelativeLinkOffset
		suffixOffset,
		localBaseUniOffset,
		suffixUniOffset,
	})
	buf.Write(volumeID.Bytes())
	buf.Write(ansi)
	buf.WriteByte(0)
	buf.WriteByte(0) // empty CommonPathSuffix
	buf.Write(wide)
	buf.Write([]byte{0, 0})
	buf.Write([]byte{0, 0}) // empty CommonPathSuffixUnicode
	return buf.Bytes(), nil
}

func writeCountedString(w *bytes.Buffer, s string) error {
	wide, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return fmt.Errorf("lnk: encode %q: %w", s, err)
	}
	n := len(wide) / 2
	if n > 0xFFFF {
		return fmt.Errorf("lnk: string too long (%d characters)", n)
	}
	_ = binary.Write(w, binary.LittleEndian, uint16(n))
	w.Write(wide)
	return nil
}

// WriteFile writes the link to path through a temporary file in the same
// directory, replacing any existing file at path.
func (l *Link) WriteFile(path string) error {
	data, err := l.MarshalBinary()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".s4-lnk-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// ReadFile parses the shortcut at path.
func ReadFile(path string) (*Link, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a shell link.
func Parse(data []byte) (*Link, error) {
	r := bytes.NewReader(data)
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("lnk: read header: %w", err)
	}
	if h.HeaderSize != headerSize || h.LinkCLSID != linkCLSID {
		return nil, fmt.Errorf("lnk: not a shell link")
	}
	l := &Link{ShowCommand: ShowCommand(h.ShowCommand)}

	if h.LinkFlags&hasLinkTargetIDList != 0 {
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("lnk: read id list: %w", err)
		}
		if _, err := r.Seek(int64(n), io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	if h.LinkFlags&hasLinkInfo != 0 {
		start := len(data) - r.Len()
		var size uint32
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("lnk: read link info: %w", err)
		}
		end := start + int(size)
		if size < 0x1C || end > len(data) {
			return nil, fmt.Errorf("lnk: bad link info size %d", size)
		}
		target, err := parseLinkInfo(data[start:end])
		if err != nil {
			return nil, err
		}
		l.Target = target
		if _, err := r.Seek(int64(end), io.SeekStart); err != nil {
			return nil, err
		}
	}

	unicodeStrings := h.LinkFlags&isUnicode != 0
	for _, f := range []struct {
		flag uint32
		dst  *string
	}{
		{hasName, &l.Description},
		{hasRelativePath, nil},
		{hasWorkingDir, &l.WorkingDir},
		{hasArguments, &l.Arguments},
		{hasIconLocation, &l.IconLocation},
	} {
		if h.LinkFlags&f.flag == 0 {
			continue
		}
		s, err := readCountedString(r, unicodeStrings)
		if err != nil {
			return nil, err
		}
		if f.dst != nil {
			*f.dst = s
		}
	}
	return l, nil
}

func parseLinkInfo(info []byte) (string, error) {
	u32 := func(off int) uint32 {
		if off+4 > len(info) {
			return 0
		}
		return binary.LittleEndian.Uint32(info[off:])
	}
	hdrSize := u32(4)
	flags := u32(8)
	if flags&volumeIDAndLocalBasePath == 0 {
		return "", fmt.Errorf("lnk: target is not a local path")
	}
	if hdrSize >= linkInfoHdrSize {
		if off := u32(28); off != 0 {
			base, err := wideZ(info, int(off))
			if err != nil {
				return "", err
			}
			suffix, _ := wideZ(info, int(u32(32)))
			return base + suffix, nil
		}
	}
	base, err := ansiZ(info, int(u32(16)))
	if err != nil {
		return "", err
	}
	suffix, _ := ansiZ(info, int(u32(24)))
	return base + suffix, nil
}

func ansiZ(b []byte, off int) (string, error) {
	if off <= 0 || off >= len(b) {
		return "", fmt.Errorf("lnk: offset %d out of range", off)
	}
	end := bytes.IndexByte(b[off:], 0)
	if end < 0 {
		return "", fmt.Errorf("lnk: unterminated string")
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b[off : off+end])
	return string(out), err
}

func wideZ(b []byte, off int) (string, error) {
	if off <= 0 || off >= len(b) {
		return "", fmt.Errorf("lnk: offset %d out of range", off)
	}
	end := off
	for end+1 < len(b) && (b[end] != 0 || b[end+1] != 0) {
		end += 2
	}
	if end+1 >= len(b) {
		return "", fmt.Errorf("lnk: unterminated string")
	}
	out, err := utf16le.NewDecoder().Bytes(b[off:end])
	return string(out), err
}

func readCountedString(r *bytes.Reader, wide bool) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", fmt.Errorf("lnk: read string data: %w", err)
	}
	size := int(n)
	if wide {
		size *= 2
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("lnk: read string data: %w", err)
	}
	var out []byte
	var err error
	if wide {
		out, err = utf16le.NewDecoder().Bytes(buf)
	} else {
		out, err = charmap.Windows1252.NewDecoder().Bytes(buf)
	}
	return string(out), err
}
