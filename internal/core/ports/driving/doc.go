// Package driving defines the façade interfaces the presentation
// layer consumes. Façades decouple presentation code from table-level
// query shapes; they hold no state beyond the store handle.
package driving
