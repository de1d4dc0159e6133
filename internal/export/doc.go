// Package export turns the loaded record set into a CSV file.
//
// Encode produces the bytes; an Exporter decides where they go (a
// directory, a writer such as stdout, or the clipboard). Adapter ties the
// two together and reports success or failure through a notify.Sink.
// Exports always cover every loaded record, not just the visible page.
package export
