//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package token

// Repository は認証トークンの保存先を抽象化するインターフェースです。
// トークンの中身は解釈しません。
type Repository interface {
	// Read は保存済みのトークンを返します。未保存の場合は空文字を返します。
	Read(path string) (string, error)
	Write(path string, token string) error
	// Delete はトークンを削除します。未保存の場合もエラーにはなりません。
	Delete(path string) error
}
