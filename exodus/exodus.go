package exodus

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ctessum/cdf"
)

// exodusII lays its mesh out inside a NetCDF classic container using a
// fixed naming scheme for dimensions and variables. Only the subset
// needed here is listed; per-entity names (connect1, vals_nod_var2, ...)
// are generated from the 1-based entity ordinal.
const (
	dimLenString   = "len_string"
	dimLenLine     = "len_line"
	dimFour        = "four"
	dimTimeStep    = "time_step"
	dimNumDim      = "num_dim"
	dimNumNodes    = "num_nodes"
	dimNumElem     = "num_elem"
	dimNumElBlk    = "num_el_blk"
	dimNumNodVar   = "num_nod_var"
	dimNumSideSets = "num_side_sets"

	varTimeWhole  = "time_whole"
	varEbStatus   = "eb_status"
	varEbProp1    = "eb_prop1"
	varEbNames    = "eb_names"
	varCoordX     = "coordx"
	varCoordY     = "coordy"
	varCoordZ     = "coordz"
	varCoord      = "coord"
	varCoorNames  = "coor_names"
	varNameNodVar = "name_nod_var"
	varSsProp1    = "ss_prop1"
	varSsNames    = "ss_names"

	attrTitle    = "title"
	attrVersion  = "version"
	attrAPIVer   = "api_version"
	attrWordSize = "floating_point_word_size"
	attrFileSize = "file_size"
	attrName     = "name"
	attrElemType = "elem_type"

	lenString = 33
	lenLine   = 81
)

func blockSizeDim(i int) string   { return fmt.Sprintf("num_el_in_blk%d", i+1) }
func blockNodesDim(i int) string  { return fmt.Sprintf("num_nod_per_el%d", i+1) }
func connectVar(i int) string     { return fmt.Sprintf("connect%d", i+1) }
func valsNodVar(i int) string     { return fmt.Sprintf("vals_nod_var%d", i+1) }
func sideSetSizeDim(i int) string { return fmt.Sprintf("num_side_ss%d", i+1) }

// Block is one element block as it appears on file. Connectivity holds
// 1-based node references, NodesPerElem entries per element.
type Block struct {
	ID           int
	Name         string
	Type         string // element type tag, e.g. "QUAD4"
	NodesPerElem int
	Connectivity []int
}

// NumElements returns the element count derived from the connectivity
func (b Block) NumElements() int {
	if b.NodesPerElem == 0 {
		return 0
	}
	return len(b.Connectivity) / b.NodesPerElem
}

// SideSet carries the side set identity and size, enough for reporting
type SideSet struct {
	ID       int
	Name     string
	NumSides int
}

// File is an exodusII file open for reading
type File struct {
	path string
	f    *os.File
	cf   *cdf.File
	dims map[string]int
	vars map[string]bool
}

// Open opens an exodusII file for reading
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	cf, err := cdf.Open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: not an exodusII file: %w", path, err)
	}
	ef := &File{
		path: path,
		f:    f,
		cf:   cf,
		dims: make(map[string]int),
		vars: make(map[string]bool),
	}
	// The classic header only exposes dimensions through the variables
	// that use them, so walk every variable once and collect lengths.
	for _, v := range cf.Header.Variables() {
		ef.vars[v] = true
		names := cf.Header.Dimensions(v)
		lens := cf.Header.Lengths(v)
		for i, name := range names {
			if i < len(lens) {
				ef.dims[name] = lens[i]
			}
		}
	}
	// The record dimension reads as zero length from the header table;
	// the actual record count sits in the container preamble.
	var nr [4]byte
	if _, err := f.ReadAt(nr[:], 4); err == nil {
		ef.dims[dimTimeStep] = int(int32(binary.BigEndian.Uint32(nr[:])))
	}
	return ef, nil
}

// Close closes the underlying file
func (f *File) Close() error {
	return f.f.Close()
}

// Path returns the path the file was opened with
func (f *File) Path() string {
	return f.path
}

func (f *File) hasVar(name string) bool {
	return f.vars[name]
}

func (f *File) dimLen(name string) int {
	n := f.dims[name]
	if n < 0 {
		return 0
	}
	return n
}

func (f *File) readDoubles(name string, begin, end []int, n int) ([]float64, error) {
	r := f.cf.Reader(name, begin, end)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: reading %s: %w", f.path, name, err)
	}
	switch v := buf.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: %s: unexpected value type %T", f.path, name, buf)
}

func (f *File) readInts(name string, n int) ([]int, error) {
	r := f.cf.Reader(name, nil, nil)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: reading %s: %w", f.path, name, err)
	}
	switch v := buf.(type) {
	case []int32:
		out := make([]int, len(v))
		for i, x := range v {
			out[i] = int(x)
		}
		return out, nil
	case []int16:
		out := make([]int, len(v))
		for i, x := range v {
			out[i] = int(x)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: %s: unexpected value type %T", f.path, name, buf)
}

func (f *File) readChars(name string, n int) ([]byte, error) {
	r := f.cf.Reader(name, nil, nil)
	buf := r.Zero(n)
	switch v := buf.(type) {
	case []byte:
		if _, err := r.Read(v); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%s: reading %s: %w", f.path, name, err)
		}
		return v, nil
	case []int8:
		if _, err := r.Read(v); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%s: reading %s: %w", f.path, name, err)
		}
		out := make([]byte, len(v))
		for i, x := range v {
			out[i] = byte(x)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: %s: unexpected value type %T", f.path, name, buf)
}

// attrString normalizes a text attribute value
func attrString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimRight(s, "\x00 ")
	case []byte:
		return strings.TrimRight(string(s), "\x00 ")
	}
	return ""
}

// unpackNames splits a char variable into fixed-width name records
func unpackNames(raw []byte, count int) []string {
	names := make([]string, count)
	for i := 0; i < count; i++ {
		lo := i * lenString
		if lo >= len(raw) {
			break
		}
		hi := lo + lenString
		if hi > len(raw) {
			hi = len(raw)
		}
		names[i] = strings.TrimRight(string(raw[lo:hi]), "\x00 ")
	}
	return names
}

// packNames lays names out as NUL-padded fixed-width records
func packNames(names []string) []byte {
	buf := make([]byte, len(names)*lenString)
	for i, name := range names {
		copy(buf[i*lenString:(i+1)*lenString], name)
	}
	return buf
}
