// Package host keeps the schema, UI schema and form data documents of one
// form consistent while fields are added, edited, renamed, removed and reset.
//
// Every transition builds new document values from the previous ones and
// installs them together as one Snapshot, so holders of an older snapshot
// never observe a change and observers always see the three documents in
// agreement. A Host is driven by one event at a time and is not safe for
// concurrent use.
package host
