package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/roemer/gotaskr"
	"github.com/roemer/gotaskr/execr"
)

// Internal variables
var outputDirectory = ".build-output"
var version = "0.1.0"
var mainPackage = "./cmd/gomanifest"

// The targets a release is built for
var targets = []struct {
	task string
	goos string
	arch string
	ext  string
}{
	{"Compile:Windows", "windows", "amd64", ".exe"},
	{"Compile:Linux", "linux", "amd64", ""},
	{"Compile:LinuxArm", "linux", "arm64", ""},
	{"Compile:Mac", "darwin", "amd64", ""},
	{"Compile:MacArm", "darwin", "arm64", ""},
}

func main() {
	os.Exit(gotaskr.Execute())
}

func init() {
	gotaskr.Task("Test", func() error {
		return execr.Run(true, "go", "test", "./...")
	})

	for _, target := range targets {
		gotaskr.Task(target.task, func() error {
			os.Setenv("GOOS", target.goos)
			os.Setenv("GOARCH", target.arch)

			path, err := compile(target.ext)
			if err != nil {
				return err
			}
			return zipRelease(path)
		})
	}
}

func compile(ext string) (string, error) {
	outputFile := filepath.Join(outputDirectory, "gomanifest"+ext)
	ldflags := fmt.Sprintf("-X github.com/roemer/gomanifest/internal/app/gomanifest.Version=%s", version)
	return outputFile, execr.Run(true, "go", "build", "-ldflags", ldflags, "-o", outputFile, mainPackage)
}

func zipRelease(file string) error {
	zipFilePath := filepath.Join(outputDirectory, fmt.Sprintf("gomanifest-%s-%s-%s.zip", version, os.Getenv("GOOS"), os.Getenv("GOARCH")))

	a, err := os.Create(zipFilePath)
	if err != nil {
		return err
	}
	defer a.Close()

	return createFlatZip(a, file)
}

// Writes the given files into a zip without their directories
func createFlatZip(w io.Writer, files ...string) error {
	z := zip.NewWriter(w)
	for _, file := range files {
		if err := addZipEntry(z, file); err != nil {
			return err
		}
	}
	return z.Close()
}

func addZipEntry(z *zip.Writer, file string) error {
	src, err := os.Open(file)
	if err != nil {
		return err
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = filepath.Base(file)
	dst, err := z.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
