// Code generated by hand. DO NOT EDIT.

package generated

var recieve = "teh"
