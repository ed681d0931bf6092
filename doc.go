// Package ofx is a client for the Open Financial Exchange protocol, used by
// banks, card issuers and brokers to serve statements to personal finance
// software.
//
// The package is organized in layers:
//   - Schemas: every OFX aggregate is a Go struct registered in a Registry
//     with the wire tag and order of each field. Schemas is the registry of
//     every aggregate known to this package.
//   - Codecs: leaf values (text, integers, decimals, Y/N flags, dates and
//     enumerations) are converted by a Codec.
//   - Syntax: aggregates are marshalled to and unmarshalled from a stream of
//     tag events, written and read either in the SGML syntax of OFX 1.x or in
//     the XML syntax of OFX 2.x. The SGML reader is lenient and closes
//     elements implicitly.
//   - Documents: Encoder and Decoder handle the OFX header and the envelope.
//   - Correlation: Validate checks that a response answers a request, one
//     transaction at a time.
//   - Client: Institution talks to a financial institution over a Transport.
//
// Reading a statement downloaded from a bank is as simple as:
//
//	var resp ofx.ResponseEnvelope
//	if err := ofx.Unmarshal(data, &resp); err != nil {
//		return err
//	}
package ofx
