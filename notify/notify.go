// The notify subpackage provides [Notifier], a small synchronous
// publish/subscribe fan-out used to announce changes to any number
// of listeners.
//
// Listeners are called in registration order from the goroutine that
// fires the event, and the first listener error stops the fan-out and
// is returned to the caller unchanged.
package notify

// A function that receives events of type E. Returning an error
// interrupts the current fan-out.
type Listener[E any] func(event E) error

// Identifies a single listener registration. The zero value never
// identifies any registration.
type Handle uint64

type entry[E any] struct {
	handle   Handle
	listener Listener[E]
}

// An ordered list of listeners. Registering the same function more
// than once creates independent registrations, each with its own
// [Handle], and removing a handle only removes that registration.
//
// The zero value is ready to use. Notifiers are not safe for concurrent
// use.
type Notifier[E any] struct {
	entries    []entry[E]
	lastHandle Handle
}

// Registers the given listener at the end of the list and returns the
// handle that identifies this registration. Nil listeners will panic.
func (self *Notifier[E]) Add(listener Listener[E]) Handle {
	if listener == nil { panic("nil listener") } // dev mistake
	self.lastHandle += 1
	self.entries = append(self.entries, entry[E]{handle: self.lastHandle, listener: listener})
	return self.lastHandle
}

// Removes the registration identified by the given handle. Returns
// false if no such registration exists (e.g. it was already removed).
func (self *Notifier[E]) Remove(handle Handle) bool {
	for i, registered := range self.entries {
		if registered.handle != handle { continue }
		entries := make([]entry[E], 0, len(self.entries)-1)
		entries = append(entries, self.entries[:i]...)
		self.entries = append(entries, self.entries[i+1:]...)
		return true
	}
	return false
}

// Returns the number of registrations.
func (self *Notifier[E]) Len() int { return len(self.entries) }

// Removes all the registrations.
func (self *Notifier[E]) Clear() { self.entries = nil }

// Calls every listener registered at the moment Fire is invoked, in
// registration order, passing the same event to each of them. Listeners
// added or removed during the fan-out only affect later calls.
//
// If a listener returns an error, the remaining listeners are skipped
// and the error is returned as is. Panics are not recovered.
func (self *Notifier[E]) Fire(event E) error {
	// Remove() never modifies the backing array in place, and Add() only
	// writes past the current length, so this view stays stable
	entries := self.entries
	for _, registered := range entries {
		if err := registered.listener(event); err != nil {
			return err
		}
	}
	return nil
}
