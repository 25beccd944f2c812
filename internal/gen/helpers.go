package gen

// Bodies of the runtime helpers emitted on demand. FunctionName marks where
// the helper's actual name goes.

var mathIsPrime = []string{
	"function " + FunctionName + "(n) {",
	"  // https://en.wikipedia.org/wiki/Primality_test#Naive_methods",
	"  if (n == 2 || n == 3) {",
	"    return true;",
	"  }",
	"  // False if n is NaN, negative, is 1, or not whole.",
	"  // And false if n is divisible by 2 or 3.",
	"  if (isNaN(n) || n <= 1 || n % 1 != 0 || n % 2 == 0 || n % 3 == 0) {",
	"    return false;",
	"  }",
	"  // Check all the numbers of form 6k +/- 1, up to sqrt(n).",
	"  for (var x = 6; x <= Math.sqrt(n) + 1; x += 6) {",
	"    if (n % (x - 1) == 0 || n % (x + 1) == 0) {",
	"      return false;",
	"    }",
	"  }",
	"  return true;",
	"}",
}

var mathSum = []string{
	"function " + FunctionName + "(myList) {",
	"  return myList.reduce(function(x, y) {return x + y;}, 0);",
	"}",
}

var mathMin = []string{
	"function " + FunctionName + "(myList) {",
	"  return Math.min.apply(null, myList);",
	"}",
}

var mathMax = []string{
	"function " + FunctionName + "(myList) {",
	"  return Math.max.apply(null, myList);",
	"}",
}

var mathMean = []string{
	"function " + FunctionName + "(myList) {",
	"  return myList.reduce(function(x, y) {return x + y;}) / myList.length;",
	"}",
}

var mathMedian = []string{
	"function " + FunctionName + "(myList) {",
	"  var localList = myList.filter(function (x) {return typeof x == 'number';});",
	"  if (!localList.length) return null;",
	"  localList.sort(function(a, b) {return b - a;});",
	"  if (localList.length % 2 == 0) {",
	"    return (localList[localList.length / 2 - 1] + localList[localList.length / 2]) / 2;",
	"  } else {",
	"    return localList[(localList.length - 1) / 2];",
	"  }",
	"}",
}

var mathModes = []string{
	"function " + FunctionName + "(values) {",
	"  var modes = [];",
	"  var counts = [];",
	"  var maxCount = 0;",
	"  for (var i = 0; i < values.length; i++) {",
	"    var value = values[i];",
	"    var found = false;",
	"    var thisCount;",
	"    for (var j = 0; j < counts.length; j++) {",
	"      if (counts[j][0] === value) {",
	"        thisCount = ++counts[j][1];",
	"        found = true;",
	"        break;",
	"      }",
	"    }",
	"    if (!found) {",
	"      counts.push([value, 1]);",
	"      thisCount = 1;",
	"    }",
	"    maxCount = Math.max(thisCount, maxCount);",
	"  }",
	"  for (var j = 0; j < counts.length; j++) {",
	"    if (counts[j][1] == maxCount) {",
	"        modes.push(counts[j][0]);",
	"    }",
	"  }",
	"  return modes;",
	"}",
}

var mathStandardDeviation = []string{
	"function " + FunctionName + "(numbers) {",
	"  var n = numbers.length;",
	"  if (!n) return null;",
	"  var mean = numbers.reduce(function(x, y) {return x + y;}) / n;",
	"  var variance = 0;",
	"  for (var j = 0; j < n; j++) {",
	"    variance += Math.pow(numbers[j] - mean, 2);",
	"  }",
	"  variance = variance / n;",
	"  return Math.sqrt(variance);",
	"}",
}

var mathRandomList = []string{
	"function " + FunctionName + "(list) {",
	"  var x = Math.floor(Math.random() * list.length);",
	"  return list[x];",
	"}",
}

var mathRandomInt = []string{
	"function " + FunctionName + "(a, b) {",
	"  if (a > b) {",
	"    // Swap a and b to ensure a is smaller.",
	"    var c = a;",
	"    a = b;",
	"    b = c;",
	"  }",
	"  return Math.floor(Math.random() * (b - a + 1) + a);",
	"}",
}

var listsRepeat = []string{
	"function " + FunctionName + "(value, n) {",
	"  var array = [];",
	"  for (var i = 0; i < n; i++) {",
	"    array[i] = value;",
	"  }",
	"  return array;",
	"}",
}

var listsGetRandomItem = []string{
	"function " + FunctionName + "(list, remove) {",
	"  var x = Math.floor(Math.random() * list.length);",
	"  if (remove) {",
	"    return list.splice(x, 1)[0];",
	"  } else {",
	"    return list[x];",
	"  }",
	"}",
}

var listsGetSortCompare = []string{
	"function " + FunctionName + "(type, direction) {",
	"  var compareFuncs = {",
	`    "NUMERIC": function(a, b) {`,
	"        return Number(a) - Number(b); },",
	`    "TEXT": function(a, b) {`,
	"        return a.toString() > b.toString() ? 1 : -1; },",
	`    "IGNORE_CASE": function(a, b) {`,
	"        return a.toString().toLowerCase() > b.toString().toLowerCase() ? 1 : -1; },",
	"  };",
	"  var compare = compareFuncs[type];",
	"  return function(a, b) { return compare(a, b) * direction; }",
	"}",
}

var textRandomLetter = []string{
	"function " + FunctionName + "(text) {",
	"  var x = Math.floor(Math.random() * text.length);",
	"  return text[x];",
	"}",
}

var textToTitleCase = []string{
	"function " + FunctionName + "(str) {",
	`  return str.replace(/\S+/g,`,
	"      function(txt) {return txt[0].toUpperCase() + txt.substring(1).toLowerCase();});",
	"}",
}

var textCount = []string{
	"function " + FunctionName + "(haystack, needle) {",
	"  if (needle.length === 0) {",
	"    return haystack.length + 1;",
	"  } else {",
	"    return haystack.split(needle).length - 1;",
	"  }",
	"}",
}

var textReplace = []string{
	"function " + FunctionName + "(haystack, needle, replacement) {",
	`  needle = needle.replace(/([-()\[\]{}+?*.$\^|,:#<!\\])/g,"\\$1")`,
	`                 .replace(/\x08/g,"\\x08");`,
	"  return haystack.replace(new RegExp(needle, 'g'), replacement);",
	"}",
}

var colourRandom = []string{
	"function " + FunctionName + "() {",
	"  var num = Math.floor(Math.random() * Math.pow(2, 24));",
	"  return '#' + ('00000' + num.toString(16)).substr(-6);",
	"}",
}

var colourRGB = []string{
	"function " + FunctionName + "(r, g, b) {",
	"  r = Math.max(Math.min(Number(r), 100), 0) * 2.55;",
	"  g = Math.max(Math.min(Number(g), 100), 0) * 2.55;",
	"  b = Math.max(Math.min(Number(b), 100), 0) * 2.55;",
	"  r = ('0' + (Math.round(r) || 0).toString(16)).slice(-2);",
	"  g = ('0' + (Math.round(g) || 0).toString(16)).slice(-2);",
	"  b = ('0' + (Math.round(b) || 0).toString(16)).slice(-2);",
	"  return '#' + r + g + b;",
	"}",
}

var colourBlend = []string{
	"function " + FunctionName + "(c1, c2, ratio) {",
	"  ratio = Math.max(Math.min(Number(ratio), 1), 0);",
	"  var r1 = parseInt(c1.substring(1, 3), 16);",
	"  var g1 = parseInt(c1.substring(3, 5), 16);",
	"  var b1 = parseInt(c1.substring(5, 7), 16);",
	"  var r2 = parseInt(c2.substring(1, 3), 16);",
	"  var g2 = parseInt(c2.substring(3, 5), 16);",
	"  var b2 = parseInt(c2.substring(5, 7), 16);",
	"  var r = Math.round(r1 * (1 - ratio) + r2 * ratio);",
	"  var g = Math.round(g1 * (1 - ratio) + g2 * ratio);",
	"  var b = Math.round(b1 * (1 - ratio) + b2 * ratio);",
	"  r = ('0' + (r || 0).toString(16)).slice(-2);",
	"  g = ('0' + (g || 0).toString(16)).slice(-2);",
	"  b = ('0' + (b || 0).toString(16)).slice(-2);",
	"  return '#' + r + g + b;",
	"}",
}

var wherePascalCase = map[string]string{
	"FIRST":      "First",
	"LAST":       "Last",
	"FROM_START": "FromStart",
	"FROM_END":   "FromEnd",
}

// sequenceIndex is the helper-side expression locating where in a sequence.
func sequenceIndex(name, where, at string) string {
	switch where {
	case "FIRST":
		return "0"
	case "FROM_END":
		return name + ".length - 1 - " + at
	case "LAST":
		return name + ".length - 1"
	default:
		return at
	}
}

func takesIndex(where string) bool {
	return where == "FROM_START" || where == "FROM_END"
}

// subsequence builds the helper slicing a list or string between two
// positions.
func subsequence(where1, where2 string) (string, []string) {
	params := "sequence"
	if takesIndex(where1) {
		params += ", at1"
	}
	if takesIndex(where2) {
		params += ", at2"
	}
	return "subsequence" + wherePascalCase[where1] + wherePascalCase[where2], []string{
		"function " + FunctionName + "(" + params + ") {",
		"  var start = " + sequenceIndex("sequence", where1, "at1") + ";",
		"  var end = " + sequenceIndex("sequence", where2, "at2") + " + 1;",
		"  return sequence.slice(start, end);",
		"}",
	}
}
