// invalid.go: a flatten field that also carries epeedefault, which
// generation must reject (mirrors the Rust macro's compile-time panic
// on epee_flatten combined with epee_default).
package invalidflattendefault

type Inner struct {
	A uint32 `epee:"a"`
}

type Outer struct {
	Inner Inner `epee:",flatten" epeedefault:"0"`
}
