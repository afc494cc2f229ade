//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package requestId

// Generator は履歴バックエンドへのリクエストごとに付与する X-Request-Id を発行します。
type Generator interface {
	NewRequestId() string
}
