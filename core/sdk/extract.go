package sdk

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

// ErrUnsupportedArchive is returned for archive formats Extract cannot read.
var ErrUnsupportedArchive = errors.New("unsupported archive format")

// ErrEntryEscapes is returned when an archive entry, or a link it creates,
// would resolve outside the extraction directory.
var ErrEntryEscapes = errors.New("archive entry escapes destination")

const (
	// maxLinkHops bounds symlink expansion while resolving one entry.
	maxLinkHops = 40
	// maxLinkTarget bounds the body of a zip symlink entry.
	maxLinkTarget = 4096
)

// Extract unpacks a .zip, .tar.gz or .tgz archive into dest.
// Entry paths are resolved against the links already extracted, and entries
// that would land outside dest are rejected.
func Extract(archive, dest string) error {
	name := strings.ToLower(archive)
	isZip := strings.HasSuffix(name, ".zip")
	if !isZip && !strings.HasSuffix(name, ".tar.gz") && !strings.HasSuffix(name, ".tgz") {
		return fmt.Errorf("%s: %w", filepath.Base(archive), ErrUnsupportedArchive)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	root, err := filepath.EvalSymlinks(dest)
	if err != nil {
		return err
	}
	x := &extractor{root: root}

	if isZip {
		return x.zip(archive)
	}
	return x.tarGz(archive)
}

// extractor writes entries below root, which is a symlink-free path.
type extractor struct {
	root string
}

// resolve maps an archive path to a real path below root. Components are
// followed one by one; symlinks found on disk are expanded, so a chain of
// links that leaves root is caught no matter how it was assembled. The last
// component is not expanded when it is a symlink and keepLast is set.
func (x *extractor) resolve(name string, keepLast bool) (string, error) {
	current := x.root
	pending := splitPath(name)
	hops := 0

	for len(pending) > 0 {
		part := pending[0]
		pending = pending[1:]

		switch part {
		case "", ".":
			continue
		case "..":
			if current == x.root {
				return "", fmt.Errorf("%q: %w", name, ErrEntryEscapes)
			}
			current = filepath.Dir(current)
			continue
		}

		next := filepath.Join(current, part)
		if keepLast && len(pending) == 0 {
			current = next
			break
		}

		info, err := os.Lstat(next)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			current = next
			continue
		case err != nil:
			return "", err
		case info.Mode()&os.ModeSymlink == 0:
			current = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", fmt.Errorf("%q: too many levels of symbolic links", name)
		}
		link, err := os.Readlink(next)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(link) || filepath.VolumeName(link) != "" {
			return "", fmt.Errorf("%q: %w", name, ErrEntryEscapes)
		}
		pending = append(splitPath(link), pending...)
	}
	return current, nil
}

func splitPath(p string) []string {
	return strings.Split(filepath.ToSlash(p), "/")
}

func (x *extractor) dir(name string) error {
	target, err := x.resolve(name, false)
	if err != nil {
		return err
	}
	return os.MkdirAll(target, 0o755)
}

func (x *extractor) file(name string, mode os.FileMode, r io.Reader) error {
	target, err := x.resolve(name, false)
	if err != nil {
		return err
	}
	return writeEntry(target, mode, r)
}

// symlink creates name pointing at link. The link must be relative and must
// resolve below root from where it is placed.
func (x *extractor) symlink(name, link string) error {
	if link == "" || filepath.IsAbs(link) || filepath.VolumeName(link) != "" {
		return fmt.Errorf("symlink %q -> %q: %w", name, link, ErrEntryEscapes)
	}
	target, err := x.resolve(name, true)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(x.root, filepath.Dir(target))
	if err != nil {
		return err
	}
	// Joined without cleaning: ".." inside link must follow links on disk.
	if _, err := x.resolve(filepath.ToSlash(rel)+"/"+link, false); err != nil {
		return fmt.Errorf("symlink %q -> %q: %w", name, link, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	os.Remove(target)
	return os.Symlink(link, target)
}

// hardlink creates name as a hard link to the archive path linkname.
func (x *extractor) hardlink(name, linkname string) error {
	source, err := x.resolve(linkname, false)
	if err != nil {
		return err
	}
	target, err := x.resolve(name, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	os.Remove(target)
	if err := os.Link(source, target); err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", name, linkname, err)
	}
	return nil
}

func (x *extractor) zip(archive string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", archive, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := x.zipEntry(f); err != nil {
			return err
		}
	}
	return nil
}

func (x *extractor) zipEntry(f *zip.File) error {
	mode := f.Mode()
	if mode.IsDir() {
		return x.dir(f.Name)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	defer rc.Close()

	switch {
	case mode&os.ModeSymlink != 0:
		link, err := io.ReadAll(io.LimitReader(rc, maxLinkTarget))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
		return x.symlink(f.Name, string(link))
	case mode.IsRegular():
		return x.file(f.Name, mode, rc)
	default:
		return fmt.Errorf("archive entry %q: unsupported file mode %s", f.Name, mode)
	}
}

func (x *extractor) tarGz(archive string) error {
	f, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", archive, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", archive, err)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			err = x.dir(hdr.Name)
		case tar.TypeReg:
			err = x.file(hdr.Name, hdr.FileInfo().Mode(), tr)
		case tar.TypeSymlink:
			err = x.symlink(hdr.Name, hdr.Linkname)
		case tar.TypeLink:
			err = x.hardlink(hdr.Name, hdr.Linkname)
		case tar.TypeXGlobalHeader:
			// pax metadata, no file
		default:
			err = fmt.Errorf("archive entry %q: unsupported type %q", hdr.Name, hdr.Typeflag)
		}
		if err != nil {
			return err
		}
	}
}

func writeEntry(target string, mode os.FileMode, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	perm := mode.Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return out.Close()
}
