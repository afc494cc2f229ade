//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package file

import "os"

type Repository interface {
	Getwd() (string, error)
	Read(path string) ([]byte, error)
	Write(path string, data []byte, perm os.FileMode) error
	Exists(path string) bool
	Delete(path string) error
	MkdirAll(path string) error
}
