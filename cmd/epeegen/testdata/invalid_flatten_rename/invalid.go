// invalid.go: a flatten field that also carries a renamed wire name,
// which generation must reject alongside the epeedefault combination.
package invalidflattenrename

type Inner struct {
	A uint32 `epee:"a"`
}

type Outer struct {
	Inner Inner `epee:"inner,flatten"`
}
