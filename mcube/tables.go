package mcube

// MaxTriangles is the largest number of triangles a single cell can produce.
const MaxTriangles = 5

// edgeTable lists, for each configuration code, the ascending ids of the
// cube edges whose end corners lie on opposite sides of the threshold.
var edgeTable = [256][]uint8{
	{},                                     // 0x00
	{0, 4, 8},                              // 0x01
	{0, 5, 9},                              // 0x02
	{4, 5, 8, 9},                           // 0x03
	{1, 4, 10},                             // 0x04
	{0, 1, 8, 10},                          // 0x05
	{0, 1, 4, 5, 9, 10},                    // 0x06
	{1, 5, 8, 9, 10},                       // 0x07
	{1, 5, 11},                             // 0x08
	{0, 1, 4, 5, 8, 11},                    // 0x09
	{0, 1, 9, 11},                          // 0x0a
	{1, 4, 8, 9, 11},                       // 0x0b
	{4, 5, 10, 11},                         // 0x0c
	{0, 5, 8, 10, 11},                      // 0x0d
	{0, 4, 9, 10, 11},                      // 0x0e
	{8, 9, 10, 11},                         // 0x0f
	{2, 6, 8},                              // 0x10
	{0, 2, 4, 6},                           // 0x11
	{0, 2, 5, 6, 8, 9},                     // 0x12
	{2, 4, 5, 6, 9},                        // 0x13
	{1, 2, 4, 6, 8, 10},                    // 0x14
	{0, 1, 2, 6, 10},                       // 0x15
	{0, 1, 2, 4, 5, 6, 8, 9, 10},           // 0x16
	{1, 2, 5, 6, 9, 10},                    // 0x17
	{1, 2, 5, 6, 8, 11},                    // 0x18
	{0, 1, 2, 4, 5, 6, 11},                 // 0x19
	{0, 1, 2, 6, 8, 9, 11},                 // 0x1a
	{1, 2, 4, 6, 9, 11},                    // 0x1b
	{2, 4, 5, 6, 8, 10, 11},                // 0x1c
	{0, 2, 5, 6, 10, 11},                   // 0x1d
	{0, 2, 4, 6, 8, 9, 10, 11},             // 0x1e
	{2, 6, 9, 10, 11},                      // 0x1f
	{2, 7, 9},                              // 0x20
	{0, 2, 4, 7, 8, 9},                     // 0x21
	{0, 2, 5, 7},                           // 0x22
	{2, 4, 5, 7, 8},                        // 0x23
	{1, 2, 4, 7, 9, 10},                    // 0x24
	{0, 1, 2, 7, 8, 9, 10},                 // 0x25
	{0, 1, 2, 4, 5, 7, 10},                 // 0x26
	{1, 2, 5, 7, 8, 10},                    // 0x27
	{1, 2, 5, 7, 9, 11},                    // 0x28
	{0, 1, 2, 4, 5, 7, 8, 9, 11},           // 0x29
	{0, 1, 2, 7, 11},                       // 0x2a
	{1, 2, 4, 7, 8, 11},                    // 0x2b
	{2, 4, 5, 7, 9, 10, 11},                // 0x2c
	{0, 2, 5, 7, 8, 9, 10, 11},             // 0x2d
	{0, 2, 4, 7, 10, 11},                   // 0x2e
	{2, 7, 8, 10, 11},                      // 0x2f
	{6, 7, 8, 9},                           // 0x30
	{0, 4, 6, 7, 9},                        // 0x31
	{0, 5, 6, 7, 8},                        // 0x32
	{4, 5, 6, 7},                           // 0x33
	{1, 4, 6, 7, 8, 9, 10},                 // 0x34
	{0, 1, 6, 7, 9, 10},                    // 0x35
	{0, 1, 4, 5, 6, 7, 8, 10},              // 0x36
	{1, 5, 6, 7, 10},                       // 0x37
	{1, 5, 6, 7, 8, 9, 11},                 // 0x38
	{0, 1, 4, 5, 6, 7, 9, 11},              // 0x39
	{0, 1, 6, 7, 8, 11},                    // 0x3a
	{1, 4, 6, 7, 11},                       // 0x3b
	{4, 5, 6, 7, 8, 9, 10, 11},             // 0x3c
	{0, 5, 6, 7, 9, 10, 11},                // 0x3d
	{0, 4, 6, 7, 8, 10, 11},                // 0x3e
	{6, 7, 10, 11},                         // 0x3f
	{3, 6, 10},                             // 0x40
	{0, 3, 4, 6, 8, 10},                    // 0x41
	{0, 3, 5, 6, 9, 10},                    // 0x42
	{3, 4, 5, 6, 8, 9, 10},                 // 0x43
	{1, 3, 4, 6},                           // 0x44
	{0, 1, 3, 6, 8},                        // 0x45
	{0, 1, 3, 4, 5, 6, 9},                  // 0x46
	{1, 3, 5, 6, 8, 9},                     // 0x47
	{1, 3, 5, 6, 10, 11},                   // 0x48
	{0, 1, 3, 4, 5, 6, 8, 10, 11},          // 0x49
	{0, 1, 3, 6, 9, 10, 11},                // 0x4a
	{1, 3, 4, 6, 8, 9, 10, 11},             // 0x4b
	{3, 4, 5, 6, 11},                       // 0x4c
	{0, 3, 5, 6, 8, 11},                    // 0x4d
	{0, 3, 4, 6, 9, 11},                    // 0x4e
	{3, 6, 8, 9, 11},                       // 0x4f
	{2, 3, 8, 10},                          // 0x50
	{0, 2, 3, 4, 10},                       // 0x51
	{0, 2, 3, 5, 8, 9, 10},                 // 0x52
	{2, 3, 4, 5, 9, 10},                    // 0x53
	{1, 2, 3, 4, 8},                        // 0x54
	{0, 1, 2, 3},                           // 0x55
	{0, 1, 2, 3, 4, 5, 8, 9},               // 0x56
	{1, 2, 3, 5, 9},                        // 0x57
	{1, 2, 3, 5, 8, 10, 11},                // 0x58
	{0, 1, 2, 3, 4, 5, 10, 11},             // 0x59
	{0, 1, 2, 3, 8, 9, 10, 11},             // 0x5a
	{1, 2, 3, 4, 9, 10, 11},                // 0x5b
	{2, 3, 4, 5, 8, 11},                    // 0x5c
	{0, 2, 3, 5, 11},                       // 0x5d
	{0, 2, 3, 4, 8, 9, 11},                 // 0x5e
	{2, 3, 9, 11},                          // 0x5f
	{2, 3, 6, 7, 9, 10},                    // 0x60
	{0, 2, 3, 4, 6, 7, 8, 9, 10},           // 0x61
	{0, 2, 3, 5, 6, 7, 10},                 // 0x62
	{2, 3, 4, 5, 6, 7, 8, 10},              // 0x63
	{1, 2, 3, 4, 6, 7, 9},                  // 0x64
	{0, 1, 2, 3, 6, 7, 8, 9},               // 0x65
	{0, 1, 2, 3, 4, 5, 6, 7},               // 0x66
	{1, 2, 3, 5, 6, 7, 8},                  // 0x67
	{1, 2, 3, 5, 6, 7, 9, 10, 11},          // 0x68
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, // 0x69
	{0, 1, 2, 3, 6, 7, 10, 11},             // 0x6a
	{1, 2, 3, 4, 6, 7, 8, 10, 11},          // 0x6b
	{2, 3, 4, 5, 6, 7, 9, 11},              // 0x6c
	{0, 2, 3, 5, 6, 7, 8, 9, 11},           // 0x6d
	{0, 2, 3, 4, 6, 7, 11},                 // 0x6e
	{2, 3, 6, 7, 8, 11},                    // 0x6f
	{3, 7, 8, 9, 10},                       // 0x70
	{0, 3, 4, 7, 9, 10},                    // 0x71
	{0, 3, 5, 7, 8, 10},                    // 0x72
	{3, 4, 5, 7, 10},                       // 0x73
	{1, 3, 4, 7, 8, 9},                     // 0x74
	{0, 1, 3, 7, 9},                        // 0x75
	{0, 1, 3, 4, 5, 7, 8},                  // 0x76
	{1, 3, 5, 7},                           // 0x77
	{1, 3, 5, 7, 8, 9, 10, 11},             // 0x78
	{0, 1, 3, 4, 5, 7, 9, 10, 11},          // 0x79
	{0, 1, 3, 7, 8, 10, 11},                // 0x7a
	{1, 3, 4, 7, 10, 11},                   // 0x7b
	{3, 4, 5, 7, 8, 9, 11},                 // 0x7c
	{0, 3, 5, 7, 9, 11},                    // 0x7d
	{0, 3, 4, 7, 8, 11},                    // 0x7e
	{3, 7, 11},                             // 0x7f
	{3, 7, 11},                             // 0x80
	{0, 3, 4, 7, 8, 11},                    // 0x81
	{0, 3, 5, 7, 9, 11},                    // 0x82
	{3, 4, 5, 7, 8, 9, 11},                 // 0x83
	{1, 3, 4, 7, 10, 11},                   // 0x84
	{0, 1, 3, 7, 8, 10, 11},                // 0x85
	{0, 1, 3, 4, 5, 7, 9, 10, 11},          // 0x86
	{1, 3, 5, 7, 8, 9, 10, 11},             // 0x87
	{1, 3, 5, 7},                           // 0x88
	{0, 1, 3, 4, 5, 7, 8},                  // 0x89
	{0, 1, 3, 7, 9},                        // 0x8a
	{1, 3, 4, 7, 8, 9},                     // 0x8b
	{3, 4, 5, 7, 10},                       // 0x8c
	{0, 3, 5, 7, 8, 10},                    // 0x8d
	{0, 3, 4, 7, 9, 10},                    // 0x8e
	{3, 7, 8, 9, 10},                       // 0x8f
	{2, 3, 6, 7, 8, 11},                    // 0x90
	{0, 2, 3, 4, 6, 7, 11},                 // 0x91
	{0, 2, 3, 5, 6, 7, 8, 9, 11},           // 0x92
	{2, 3, 4, 5, 6, 7, 9, 11},              // 0x93
	{1, 2, 3, 4, 6, 7, 8, 10, 11},          // 0x94
	{0, 1, 2, 3, 6, 7, 10, 11},             // 0x95
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, // 0x96
	{1, 2, 3, 5, 6, 7, 9, 10, 11},          // 0x97
	{1, 2, 3, 5, 6, 7, 8},                  // 0x98
	{0, 1, 2, 3, 4, 5, 6, 7},               // 0x99
	{0, 1, 2, 3, 6, 7, 8, 9},               // 0x9a
	{1, 2, 3, 4, 6, 7, 9},                  // 0x9b
	{2, 3, 4, 5, 6, 7, 8, 10},              // 0x9c
	{0, 2, 3, 5, 6, 7, 10},                 // 0x9d
	{0, 2, 3, 4, 6, 7, 8, 9, 10},           // 0x9e
	{2, 3, 6, 7, 9, 10},                    // 0x9f
	{2, 3, 9, 11},                          // 0xa0
	{0, 2, 3, 4, 8, 9, 11},                 // 0xa1
	{0, 2, 3, 5, 11},                       // 0xa2
	{2, 3, 4, 5, 8, 11},                    // 0xa3
	{1, 2, 3, 4, 9, 10, 11},                // 0xa4
	{0, 1, 2, 3, 8, 9, 10, 11},             // 0xa5
	{0, 1, 2, 3, 4, 5, 10, 11},             // 0xa6
	{1, 2, 3, 5, 8, 10, 11},                // 0xa7
	{1, 2, 3, 5, 9},                        // 0xa8
	{0, 1, 2, 3, 4, 5, 8, 9},               // 0xa9
	{0, 1, 2, 3},                           // 0xaa
	{1, 2, 3, 4, 8},                        // 0xab
	{2, 3, 4, 5, 9, 10},                    // 0xac
	{0, 2, 3, 5, 8, 9, 10},                 // 0xad
	{0, 2, 3, 4, 10},                       // 0xae
	{2, 3, 8, 10},                          // 0xaf
	{3, 6, 8, 9, 11},                       // 0xb0
	{0, 3, 4, 6, 9, 11},                    // 0xb1
	{0, 3, 5, 6, 8, 11},                    // 0xb2
	{3, 4, 5, 6, 11},                       // 0xb3
	{1, 3, 4, 6, 8, 9, 10, 11},             // 0xb4
	{0, 1, 3, 6, 9, 10, 11},                // 0xb5
	{0, 1, 3, 4, 5, 6, 8, 10, 11},          // 0xb6
	{1, 3, 5, 6, 10, 11},                   // 0xb7
	{1, 3, 5, 6, 8, 9},                     // 0xb8
	{0, 1, 3, 4, 5, 6, 9},                  // 0xb9
	{0, 1, 3, 6, 8},                        // 0xba
	{1, 3, 4, 6},                           // 0xbb
	{3, 4, 5, 6, 8, 9, 10},                 // 0xbc
	{0, 3, 5, 6, 9, 10},                    // 0xbd
	{0, 3, 4, 6, 8, 10},                    // 0xbe
	{3, 6, 10},                             // 0xbf
	{6, 7, 10, 11},                         // 0xc0
	{0, 4, 6, 7, 8, 10, 11},                // 0xc1
	{0, 5, 6, 7, 9, 10, 11},                // 0xc2
	{4, 5, 6, 7, 8, 9, 10, 11},             // 0xc3
	{1, 4, 6, 7, 11},                       // 0xc4
	{0, 1, 6, 7, 8, 11},                    // 0xc5
	{0, 1, 4, 5, 6, 7, 9, 11},              // 0xc6
	{1, 5, 6, 7, 8, 9, 11},                 // 0xc7
	{1, 5, 6, 7, 10},                       // 0xc8
	{0, 1, 4, 5, 6, 7, 8, 10},              // 0xc9
	{0, 1, 6, 7, 9, 10},                    // 0xca
	{1, 4, 6, 7, 8, 9, 10},                 // 0xcb
	{4, 5, 6, 7},                           // 0xcc
	{0, 5, 6, 7, 8},                        // 0xcd
	{0, 4, 6, 7, 9},                        // 0xce
	{6, 7, 8, 9},                           // 0xcf
	{2, 7, 8, 10, 11},                      // 0xd0
	{0, 2, 4, 7, 10, 11},                   // 0xd1
	{0, 2, 5, 7, 8, 9, 10, 11},             // 0xd2
	{2, 4, 5, 7, 9, 10, 11},                // 0xd3
	{1, 2, 4, 7, 8, 11},                    // 0xd4
	{0, 1, 2, 7, 11},                       // 0xd5
	{0, 1, 2, 4, 5, 7, 8, 9, 11},           // 0xd6
	{1, 2, 5, 7, 9, 11},                    // 0xd7
	{1, 2, 5, 7, 8, 10},                    // 0xd8
	{0, 1, 2, 4, 5, 7, 10},                 // 0xd9
	{0, 1, 2, 7, 8, 9, 10},                 // 0xda
	{1, 2, 4, 7, 9, 10},                    // 0xdb
	{2, 4, 5, 7, 8},                        // 0xdc
	{0, 2, 5, 7},                           // 0xdd
	{0, 2, 4, 7, 8, 9},                     // 0xde
	{2, 7, 9},                              // 0xdf
	{2, 6, 9, 10, 11},                      // 0xe0
	{0, 2, 4, 6, 8, 9, 10, 11},             // 0xe1
	{0, 2, 5, 6, 10, 11},                   // 0xe2
	{2, 4, 5, 6, 8, 10, 11},                // 0xe3
	{1, 2, 4, 6, 9, 11},                    // 0xe4
	{0, 1, 2, 6, 8, 9, 11},                 // 0xe5
	{0, 1, 2, 4, 5, 6, 11},                 // 0xe6
	{1, 2, 5, 6, 8, 11},                    // 0xe7
	{1, 2, 5, 6, 9, 10},                    // 0xe8
	{0, 1, 2, 4, 5, 6, 8, 9, 10},           // 0xe9
	{0, 1, 2, 6, 10},                       // 0xea
	{1, 2, 4, 6, 8, 10},                    // 0xeb
	{2, 4, 5, 6, 9},                        // 0xec
	{0, 2, 5, 6, 8, 9},                     // 0xed
	{0, 2, 4, 6},                           // 0xee
	{2, 6, 8},                              // 0xef
	{8, 9, 10, 11},                         // 0xf0
	{0, 4, 9, 10, 11},                      // 0xf1
	{0, 5, 8, 10, 11},                      // 0xf2
	{4, 5, 10, 11},                         // 0xf3
	{1, 4, 8, 9, 11},                       // 0xf4
	{0, 1, 9, 11},                          // 0xf5
	{0, 1, 4, 5, 8, 11},                    // 0xf6
	{1, 5, 11},                             // 0xf7
	{1, 5, 8, 9, 10},                       // 0xf8
	{0, 1, 4, 5, 9, 10},                    // 0xf9
	{0, 1, 8, 10},                          // 0xfa
	{1, 4, 10},                             // 0xfb
	{4, 5, 8, 9},                           // 0xfc
	{0, 5, 9},                              // 0xfd
	{0, 4, 8},                              // 0xfe
	{},                                     // 0xff
}

// triTable lists, for each configuration code, triangle corners as
// positions into edgeTable[code]. Three entries make one triangle.
var triTable = [256][]uint8{
	{},                                            // 0x00
	{0, 1, 2},                                     // 0x01
	{0, 2, 1},                                     // 0x02
	{0, 2, 3, 0, 3, 1},                            // 0x03
	{0, 2, 1},                                     // 0x04
	{0, 1, 3, 0, 3, 2},                            // 0x05
	{0, 4, 3, 1, 5, 2},                            // 0x06
	{0, 4, 2, 0, 2, 3, 0, 3, 1},                   // 0x07
	{0, 1, 2},                                     // 0x08
	{0, 2, 4, 1, 3, 5},                            // 0x09
	{0, 2, 3, 0, 3, 1},                            // 0x0a
	{0, 1, 2, 0, 2, 3, 0, 3, 4},                   // 0x0b
	{0, 1, 3, 0, 3, 2},                            // 0x0c
	{0, 1, 4, 0, 4, 3, 0, 3, 2},                   // 0x0d
	{0, 2, 4, 0, 4, 3, 0, 3, 1},                   // 0x0e
	{0, 1, 3, 0, 3, 2},                            // 0x0f
	{0, 2, 1},                                     // 0x10
	{0, 2, 3, 0, 3, 1},                            // 0x11
	{0, 5, 2, 1, 4, 3},                            // 0x12
	{0, 4, 2, 0, 2, 1, 0, 1, 3},                   // 0x13
	{0, 5, 2, 1, 4, 3},                            // 0x14
	{0, 1, 4, 0, 4, 3, 0, 3, 2},                   // 0x15
	{0, 7, 4, 1, 8, 3, 2, 6, 5},                   // 0x16
	{0, 5, 3, 0, 3, 1, 0, 1, 4, 0, 4, 2},          // 0x17
	{0, 2, 5, 1, 4, 3},                            // 0x18
	{0, 3, 5, 0, 5, 2, 1, 4, 6},                   // 0x19
	{0, 5, 6, 0, 6, 1, 2, 4, 3},                   // 0x1a
	{0, 2, 3, 0, 3, 1, 0, 1, 4, 0, 4, 5},          // 0x1b
	{0, 4, 3, 1, 2, 6, 1, 6, 5},                   // 0x1c
	{0, 2, 5, 0, 5, 4, 0, 4, 3, 0, 3, 1},          // 0x1d
	{0, 5, 7, 0, 7, 6, 0, 6, 2, 1, 4, 3},          // 0x1e
	{0, 2, 4, 0, 4, 3, 0, 3, 1},                   // 0x1f
	{0, 1, 2},                                     // 0x20
	{0, 2, 4, 1, 3, 5},                            // 0x21
	{0, 1, 3, 0, 3, 2},                            // 0x22
	{0, 3, 2, 0, 2, 1, 0, 1, 4},                   // 0x23
	{0, 5, 2, 1, 3, 4},                            // 0x24
	{0, 1, 6, 0, 6, 4, 2, 3, 5},                   // 0x25
	{0, 2, 5, 0, 5, 4, 1, 6, 3},                   // 0x26
	{0, 5, 4, 0, 4, 1, 0, 1, 3, 0, 3, 2},          // 0x27
	{0, 2, 5, 1, 3, 4},                            // 0x28
	{0, 3, 6, 1, 4, 8, 2, 5, 7},                   // 0x29
	{0, 2, 3, 0, 3, 4, 0, 4, 1},                   // 0x2a
	{0, 2, 4, 0, 4, 1, 0, 1, 3, 0, 3, 5},          // 0x2b
	{0, 3, 4, 1, 2, 6, 1, 6, 5},                   // 0x2c
	{0, 2, 7, 0, 7, 6, 0, 6, 4, 1, 3, 5},          // 0x2d
	{0, 1, 3, 0, 3, 5, 0, 5, 4, 0, 4, 2},          // 0x2e
	{0, 1, 4, 0, 4, 3, 0, 3, 2},                   // 0x2f
	{0, 1, 3, 0, 3, 2},                            // 0x30
	{0, 1, 2, 0, 2, 3, 0, 3, 4},                   // 0x31
	{0, 4, 2, 0, 2, 3, 0, 3, 1},                   // 0x32
	{0, 2, 3, 0, 3, 1},                            // 0x33
	{0, 6, 1, 2, 3, 5, 2, 5, 4},                   // 0x34
	{0, 1, 5, 0, 5, 2, 0, 2, 3, 0, 3, 4},          // 0x35
	{0, 6, 4, 0, 4, 5, 0, 5, 3, 1, 7, 2},          // 0x36
	{0, 4, 2, 0, 2, 3, 0, 3, 1},                   // 0x37
	{0, 1, 6, 2, 3, 5, 2, 5, 4},                   // 0x38
	{0, 2, 4, 0, 4, 5, 0, 5, 6, 1, 3, 7},          // 0x39
	{0, 4, 2, 0, 2, 3, 0, 3, 5, 0, 5, 1},          // 0x3a
	{0, 1, 2, 0, 2, 3, 0, 3, 4},                   // 0x3b
	{0, 1, 7, 0, 7, 6, 2, 3, 5, 2, 5, 4},          // 0x3c
	{0, 1, 6, 0, 6, 5, 0, 5, 2, 0, 2, 3, 0, 3, 4}, // 0x3d
	{0, 4, 2, 0, 2, 3, 0, 3, 6, 0, 6, 5, 0, 5, 1}, // 0x3e
	{0, 1, 3, 0, 3, 2},                            // 0x3f
	{0, 1, 2},                                     // 0x40
	{0, 2, 4, 1, 3, 5},                            // 0x41
	{0, 4, 2, 1, 3, 5},                            // 0x42
	{0, 3, 6, 1, 4, 5, 1, 5, 2},                   // 0x43
	{0, 1, 3, 0, 3, 2},                            // 0x44
	{0, 1, 2, 0, 2, 3, 0, 3, 4},                   // 0x45
	{0, 6, 4, 1, 2, 5, 1, 5, 3},                   // 0x46
	{0, 1, 3, 0, 3, 4, 0, 4, 5, 0, 5, 2},          // 0x47
	{0, 2, 5, 1, 3, 4},                            // 0x48
	{0, 3, 6, 1, 4, 8, 2, 5, 7},                   // 0x49
	{0, 4, 6, 0, 6, 1, 2, 3, 5},                   // 0x4a
	{0, 2, 4, 0, 4, 5, 0, 5, 7, 1, 3, 6},          // 0x4b
	{0, 3, 1, 0, 1, 2, 0, 2, 4},                   // 0x4c
	{0, 2, 5, 0, 5, 1, 0, 1, 3, 0, 3, 4},          // 0x4d
	{0, 4, 5, 0, 5, 1, 0, 1, 3, 0, 3, 2},          // 0x4e
	{0, 1, 2, 0, 2, 3, 0, 3, 4},                   // 0x4f
	{0, 2, 3, 0, 3, 1},                            // 0x50
	{0, 3, 4, 0, 4, 2, 0, 2, 1},                   // 0x51
	{0, 5, 3, 1, 4, 6, 1, 6, 2},                   // 0x52
	{0, 4, 3, 0, 3, 2, 0, 2, 5, 0, 5, 1},          // 0x53
	{0, 2, 1, 0, 1, 4, 0, 4, 3},                   // 0x54
	{0, 1, 3, 0, 3, 2},                            // 0x55
	{0, 7, 5, 1, 3, 2, 1, 2, 6, 1, 6, 4},          // 0x56
	{0, 2, 1, 0, 1, 4, 0, 4, 3},                   // 0x57
	{0, 3, 6, 1, 4, 5, 1, 5, 2},                   // 0x58
	{0, 4, 6, 0, 6, 3, 0, 3, 2, 1, 5, 7},          // 0x59
	{0, 5, 7, 0, 7, 1, 2, 4, 6, 2, 6, 3},          // 0x5a
	{3, 5, 2, 3, 2, 1, 3, 1, 4, 3, 4, 6, 3, 6, 0}, // 0x5b
	{0, 4, 2, 0, 2, 3, 0, 3, 5, 0, 5, 1},          // 0x5c
	{0, 3, 4, 0, 4, 2, 0, 2, 1},                   // 0x5d
	{6, 2, 1, 6, 1, 4, 6, 4, 3, 6, 3, 0, 6, 0, 5}, // 0x5e
	{0, 2, 3, 0, 3, 1},                            // 0x5f
	{0, 3, 4, 1, 2, 5},                            // 0x60
	{0, 3, 6, 1, 5, 7, 2, 4, 8},                   // 0x61
	{0, 1, 5, 0, 5, 3, 2, 4, 6},                   // 0x62
	{0, 5, 3, 0, 3, 2, 0, 2, 6, 1, 4, 7},          // 0x63
	{0, 2, 4, 0, 4, 3, 1, 5, 6},                   // 0x64
	{0, 1, 3, 0, 3, 4, 0, 4, 6, 2, 5, 7},          // 0x65
	{0, 2, 7, 0, 7, 5, 1, 3, 6, 1, 6, 4},          // 0x66
	{0, 2, 4, 0, 4, 6, 0, 6, 1, 0, 1, 5, 0, 5, 3}, // 0x67
	{0, 3, 8, 1, 5, 6, 2, 4, 7},                   // 0x68
	{0, 4, 8, 1, 5, 11, 2, 7, 9, 3, 6, 10},        // 0x69
	{0, 2, 5, 0, 5, 7, 0, 7, 1, 3, 4, 6},          // 0x6a
	{0, 3, 6, 0, 6, 1, 0, 1, 5, 0, 5, 8, 2, 4, 7}, // 0x6b
	{0, 5, 6, 1, 4, 2, 1, 2, 3, 1, 3, 7},          // 0x6c
	{0, 3, 8, 0, 8, 2, 0, 2, 4, 0, 4, 6, 1, 5, 7}, // 0x6d
	{0, 1, 5, 0, 5, 6, 0, 6, 2, 0, 2, 4, 0, 4, 3}, // 0x6e
	{5, 1, 2, 5, 2, 4, 5, 4, 0, 5, 0, 3},          // 0x6f
	{0, 1, 3, 0, 3, 2, 0, 2, 4},                   // 0x70
	{0, 2, 5, 0, 5, 1, 0, 1, 3, 0, 3, 4},          // 0x71
	{0, 4, 5, 0, 5, 1, 0, 1, 3, 0, 3, 2},          // 0x72
	{0, 3, 2, 0, 2, 1, 0, 1, 4},                   // 0x73
	{0, 1, 3, 0, 3, 5, 0, 5, 4, 0, 4, 2},          // 0x74
	{0, 1, 2, 0, 2, 3, 0, 3, 4},                   // 0x75
	{6, 3, 1, 6, 1, 2, 6, 2, 5, 6, 5, 4, 6, 4, 0}, // 0x76
	{0, 1, 3, 0, 3, 2},                            // 0x77
	{0, 2, 7, 1, 3, 5, 1, 5, 4, 1, 4, 6},          // 0x78
	{0, 3, 7, 0, 7, 2, 0, 2, 5, 0, 5, 6, 1, 4, 8}, // 0x79
	{0, 4, 5, 0, 5, 2, 0, 2, 3, 0, 3, 6, 0, 6, 1}, // 0x7a
	{2, 4, 1, 2, 1, 3, 2, 3, 5, 2, 5, 0},          // 0x7b
	{0, 3, 5, 0, 5, 4, 0, 4, 1, 0, 1, 2, 0, 2, 6}, // 0x7c
	{0, 2, 5, 0, 5, 1, 0, 1, 3, 0, 3, 4},          // 0x7d
	{0, 4, 2, 1, 3, 5},                            // 0x7e
	{0, 1, 2},                                     // 0x7f
	{0, 2, 1},                                     // 0x80
	{0, 2, 4, 1, 5, 3},                            // 0x81
	{0, 4, 2, 1, 5, 3},                            // 0x82
	{0, 6, 3, 1, 4, 5, 1, 5, 2},                   // 0x83
	{0, 4, 2, 1, 5, 3},                            // 0x84
	{0, 1, 5, 0, 5, 4, 2, 6, 3},                   // 0x85
	{0, 6, 4, 1, 7, 3, 2, 8, 5},                   // 0x86
	{0, 6, 4, 0, 4, 5, 0, 5, 2, 1, 7, 3},          // 0x87
	{0, 2, 3, 0, 3, 1},                            // 0x88
	{0, 3, 6, 1, 4, 5, 1, 5, 2},                   // 0x89
	{0, 4, 3, 0, 3, 2, 0, 2, 1},                   // 0x8a
	{0, 2, 4, 0, 4, 5, 0, 5, 3, 0, 3, 1},          // 0x8b
	{0, 4, 1, 0, 1, 2, 0, 2, 3},                   // 0x8c
	{0, 2, 3, 0, 3, 1, 0, 1, 5, 0, 5, 4},          // 0x8d
	{0, 4, 3, 0, 3, 1, 0, 1, 5, 0, 5, 2},          // 0x8e
	{0, 4, 2, 0, 2, 3, 0, 3, 1},                   // 0x8f
	{0, 4, 2, 1, 5, 3},                            // 0x90
	{0, 3, 4, 0, 4, 1, 2, 6, 5},                   // 0x91
	{0, 7, 3, 1, 6, 4, 2, 8, 5},                   // 0x92
	{0, 6, 3, 0, 3, 2, 0, 2, 4, 1, 7, 5},          // 0x93
	{0, 7, 3, 1, 6, 4, 2, 8, 5},                   // 0x94
	{0, 1, 6, 0, 6, 4, 0, 4, 2, 3, 7, 5},          // 0x95
	{0, 9, 5, 1, 10, 4, 2, 8, 6, 3, 11, 7},        // 0x96
	{0, 7, 4, 0, 4, 1, 0, 1, 6, 0, 6, 3, 2, 8, 5}, // 0x97
	{0, 3, 5, 0, 5, 2, 1, 6, 4},                   // 0x98
	{0, 4, 6, 0, 6, 2, 1, 5, 7, 1, 7, 3},          // 0x99
	{0, 7, 5, 0, 5, 3, 0, 3, 1, 2, 6, 4},          // 0x9a
	{0, 3, 4, 0, 4, 1, 0, 1, 6, 0, 6, 5, 0, 5, 2}, // 0x9b
	{0, 6, 4, 1, 7, 2, 1, 2, 3, 1, 3, 5},          // 0x9c
	{0, 3, 5, 0, 5, 2, 0, 2, 6, 0, 6, 4, 0, 4, 1}, // 0x9d
	{0, 7, 5, 0, 5, 2, 0, 2, 8, 0, 8, 3, 1, 6, 4}, // 0x9e
	{4, 3, 1, 4, 1, 5, 4, 5, 2, 4, 2, 0},          // 0x9f
	{0, 1, 3, 0, 3, 2},                            // 0xa0
	{0, 3, 4, 1, 2, 6, 1, 6, 5},                   // 0xa1
	{0, 1, 2, 0, 2, 4, 0, 4, 3},                   // 0xa2
	{0, 1, 5, 0, 5, 3, 0, 3, 2, 0, 2, 4},          // 0xa3
	{0, 5, 3, 1, 2, 6, 1, 6, 4},                   // 0xa4
	{0, 1, 6, 0, 6, 4, 2, 3, 7, 2, 7, 5},          // 0xa5
	{0, 2, 3, 0, 3, 7, 0, 7, 5, 1, 6, 4},          // 0xa6
	{4, 1, 2, 4, 2, 6, 4, 6, 3, 4, 3, 0, 4, 0, 5}, // 0xa7
	{0, 3, 4, 0, 4, 1, 0, 1, 2},                   // 0xa8
	{0, 4, 6, 1, 5, 7, 1, 7, 2, 1, 2, 3},          // 0xa9
	{0, 2, 3, 0, 3, 1},                            // 0xaa
	{0, 3, 4, 0, 4, 1, 0, 1, 2},                   // 0xab
	{0, 1, 5, 0, 5, 2, 0, 2, 3, 0, 3, 4},          // 0xac
	{3, 5, 1, 3, 1, 2, 3, 2, 6, 3, 6, 4, 3, 4, 0}, // 0xad
	{0, 1, 2, 0, 2, 4, 0, 4, 3},                   // 0xae
	{0, 1, 3, 0, 3, 2},                            // 0xaf
	{0, 4, 3, 0, 3, 2, 0, 2, 1},                   // 0xb0
	{0, 2, 3, 0, 3, 1, 0, 1, 5, 0, 5, 4},          // 0xb1
	{0, 4, 3, 0, 3, 1, 0, 1, 5, 0, 5, 2},          // 0xb2
	{0, 4, 2, 0, 2, 1, 0, 1, 3},                   // 0xb3
	{0, 6, 2, 1, 7, 5, 1, 5, 4, 1, 4, 3},          // 0xb4
	{0, 1, 5, 0, 5, 3, 0, 3, 2, 0, 2, 6, 0, 6, 4}, // 0xb5
	{0, 6, 5, 0, 5, 2, 0, 2, 8, 0, 8, 4, 1, 7, 3}, // 0xb6
	{3, 1, 5, 3, 5, 2, 3, 2, 0, 3, 0, 4},          // 0xb7
	{0, 2, 5, 0, 5, 4, 0, 4, 3, 0, 3, 1},          // 0xb8
	{5, 2, 1, 5, 1, 4, 5, 4, 6, 5, 6, 0, 5, 0, 3}, // 0xb9
	{0, 4, 3, 0, 3, 2, 0, 2, 1},                   // 0xba
	{0, 2, 3, 0, 3, 1},                            // 0xbb
	{0, 6, 1, 0, 1, 2, 0, 2, 5, 0, 5, 4, 0, 4, 3}, // 0xbc
	{0, 2, 4, 1, 5, 3},                            // 0xbd
	{0, 4, 3, 0, 3, 1, 0, 1, 5, 0, 5, 2},          // 0xbe
	{0, 2, 1},                                     // 0xbf
	{0, 2, 3, 0, 3, 1},                            // 0xc0
	{0, 1, 4, 2, 5, 6, 2, 6, 3},                   // 0xc1
	{0, 4, 1, 2, 5, 6, 2, 6, 3},                   // 0xc2
	{0, 4, 5, 0, 5, 1, 2, 6, 7, 2, 7, 3},          // 0xc3
	{0, 4, 3, 0, 3, 2, 0, 2, 1},                   // 0xc4
	{0, 1, 5, 0, 5, 3, 0, 3, 2, 0, 2, 4},          // 0xc5
	{0, 6, 3, 1, 7, 5, 1, 5, 4, 1, 4, 2},          // 0xc6
	{0, 6, 3, 0, 3, 2, 0, 2, 4, 0, 4, 5, 0, 5, 1}, // 0xc7
	{0, 1, 3, 0, 3, 2, 0, 2, 4},                   // 0xc8
	{0, 2, 6, 1, 3, 5, 1, 5, 4, 1, 4, 7},          // 0xc9
	{0, 4, 3, 0, 3, 2, 0, 2, 5, 0, 5, 1},          // 0xca
	{0, 1, 4, 0, 4, 5, 0, 5, 3, 0, 3, 2, 0, 2, 6}, // 0xcb
	{0, 1, 3, 0, 3, 2},                            // 0xcc
	{0, 1, 3, 0, 3, 2, 0, 2, 4},                   // 0xcd
	{0, 4, 3, 0, 3, 2, 0, 2, 1},                   // 0xce
	{0, 2, 3, 0, 3, 1},                            // 0xcf
	{0, 2, 3, 0, 3, 4, 0, 4, 1},                   // 0xd0
	{0, 2, 4, 0, 4, 5, 0, 5, 3, 0, 3, 1},          // 0xd1
	{0, 5, 2, 1, 4, 6, 1, 6, 7, 1, 7, 3},          // 0xd2
	{0, 4, 2, 0, 2, 1, 0, 1, 5, 0, 5, 6, 0, 6, 3}, // 0xd3
	{0, 5, 3, 0, 3, 1, 0, 1, 4, 0, 4, 2},          // 0xd4
	{0, 1, 4, 0, 4, 3, 0, 3, 2},                   // 0xd5
	{0, 7, 4, 1, 8, 5, 1, 5, 2, 1, 2, 6, 1, 6, 3}, // 0xd6
	{0, 5, 3, 0, 3, 1, 0, 1, 4, 0, 4, 2},          // 0xd7
	{0, 2, 3, 0, 3, 1, 0, 1, 4, 0, 4, 5},          // 0xd8
	{6, 1, 4, 6, 4, 5, 6, 5, 2, 6, 2, 0, 6, 0, 3}, // 0xd9
	{3, 2, 4, 3, 4, 6, 3, 6, 1, 3, 1, 0, 3, 0, 5}, // 0xda
	{0, 2, 5, 1, 4, 3},                            // 0xdb
	{0, 4, 1, 0, 1, 2, 0, 2, 3},                   // 0xdc
	{0, 2, 3, 0, 3, 1},                            // 0xdd
	{3, 1, 4, 3, 4, 2, 3, 2, 0, 3, 0, 5},          // 0xde
	{0, 2, 1},                                     // 0xdf
	{0, 1, 3, 0, 3, 4, 0, 4, 2},                   // 0xe0
	{0, 2, 4, 1, 3, 6, 1, 6, 7, 1, 7, 5},          // 0xe1
	{0, 1, 3, 0, 3, 4, 0, 4, 5, 0, 5, 2},          // 0xe2
	{0, 3, 5, 0, 5, 6, 0, 6, 2, 0, 2, 1, 0, 1, 4}, // 0xe3
	{0, 5, 4, 0, 4, 1, 0, 1, 3, 0, 3, 2},          // 0xe4
	{1, 6, 5, 1, 5, 2, 1, 2, 3, 1, 3, 4, 1, 4, 0}, // 0xe5
	{2, 5, 3, 2, 3, 1, 2, 1, 6, 2, 6, 4, 2, 4, 0}, // 0xe6
	{0, 5, 2, 1, 3, 4},                            // 0xe7
	{0, 2, 4, 0, 4, 1, 0, 1, 3, 0, 3, 5},          // 0xe8
	{0, 3, 6, 1, 4, 7, 1, 7, 2, 1, 2, 5, 1, 5, 8}, // 0xe9
	{0, 2, 3, 0, 3, 4, 0, 4, 1},                   // 0xea
	{0, 2, 4, 0, 4, 1, 0, 1, 3, 0, 3, 5},          // 0xeb
	{0, 3, 1, 0, 1, 2, 0, 2, 4},                   // 0xec
	{2, 5, 1, 2, 1, 3, 2, 3, 4, 2, 4, 0},          // 0xed
	{0, 1, 3, 0, 3, 2},                            // 0xee
	{0, 1, 2},                                     // 0xef
	{0, 2, 3, 0, 3, 1},                            // 0xf0
	{0, 1, 3, 0, 3, 4, 0, 4, 2},                   // 0xf1
	{0, 2, 3, 0, 3, 4, 0, 4, 1},                   // 0xf2
	{0, 2, 3, 0, 3, 1},                            // 0xf3
	{0, 4, 3, 0, 3, 2, 0, 2, 1},                   // 0xf4
	{0, 1, 3, 0, 3, 2},                            // 0xf5
	{4, 2, 1, 4, 1, 5, 4, 5, 3, 4, 3, 0},          // 0xf6
	{0, 2, 1},                                     // 0xf7
	{0, 1, 3, 0, 3, 2, 0, 2, 4},                   // 0xf8
	{5, 1, 3, 5, 3, 4, 5, 4, 0, 5, 0, 2},          // 0xf9
	{0, 2, 3, 0, 3, 1},                            // 0xfa
	{0, 1, 2},                                     // 0xfb
	{0, 1, 3, 0, 3, 2},                            // 0xfc
	{0, 1, 2},                                     // 0xfd
	{0, 2, 1},                                     // 0xfe
	{},                                            // 0xff
}
