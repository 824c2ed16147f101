package eventbus

import "reflect"

// typeKey returns the registry key for event type T.
//
// reflect.Type gives exactly the key invariant the registry needs: two
// events of the same static type always produce the same key, and
// distinct types never collide. The key is only ever compared and used
// as a map index, never dereferenced.
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
