/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object, serialized as JSON and
stored under the "_c:<package name>" key. The configuration is loaded from
the genesis file "conf" section, validated and written once during
initialization.

Not being able to get a configuration value is a critical condition for the
application and there is no recovery path for the client. Application must be
terminated and configured correctly.
*/
package gconf
