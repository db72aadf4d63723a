/*
Package core holds definitions shared by all packages of this module,
most notably coded errors.

Errors created by this package carry a numeric code (EINVALID, EMISSING, …)
and a message suitable for end users. Clients may inspect an error with
Code and UserMessage without knowing its concrete type.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core
